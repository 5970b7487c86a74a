package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/gigagent/internal/app"
	"github.com/nfrund/gigagent/internal/config"
	"github.com/nfrund/gigagent/internal/middleware"
	"github.com/nfrund/gigagent/internal/module"
	"github.com/nfrund/gigagent/internal/registry"
	"github.com/nfrund/gigagent/internal/rendering"
	"github.com/nfrund/gigagent/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Registry *registry.Registry
	renderer *rendering.UniversalRenderer
	modules  []module.Module
}

// New creates a new Server with the middleware chain, renderer, error
// handler and static assets in place. Modules are attached by Boot.
func New(cfg config.Provider) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())

	renderer := rendering.NewUniversalRenderer()
	e.Renderer = renderer
	setupErrorHandling(e)

	// Serve the embedded static assets.
	e.StaticFS("/static", web.Static())

	return &Server{
		E:        e,
		Cfg:      cfg,
		Registry: registry.New(cfg),
		renderer: renderer,
	}
}

// Boot registers every module with the registry, then boots each one on its
// own route group.
func (s *Server) Boot(ctx context.Context) error {
	return s.bootModules(ctx, app.NewModules(app.Dependencies{
		Renderer: s.renderer,
	}))
}

func (s *Server) bootModules(ctx context.Context, mods []module.Module) error {
	for _, m := range mods {
		if err := m.Register(s.Registry); err != nil {
			return fmt.Errorf("failed to register module %s: %w", m.Name(), err)
		}
	}
	for _, m := range mods {
		if err := m.Boot(ctx, s.E.Group("/"+m.Name()), s.Registry); err != nil {
			return fmt.Errorf("failed to boot module %s: %w", m.Name(), err)
		}
		slog.Info("Module booted", "module", m.Name())
	}
	s.modules = mods
	return nil
}

// shutdownModules calls Shutdown on every booted module, in reverse boot order.
func (s *Server) shutdownModules(ctx context.Context) {
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", err)
		}
	}
}
