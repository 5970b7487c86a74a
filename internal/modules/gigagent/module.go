package gigagent

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gigagent/internal/content"
	"github.com/nfrund/gigagent/internal/middleware"
	"github.com/nfrund/gigagent/internal/module"
	"github.com/nfrund/gigagent/internal/registry"
	"github.com/nfrund/gigagent/internal/rendering"
	"github.com/nfrund/gigagent/web/src/templates/pages"
)

// ContentKey is the registry key of the validated content catalog.
var ContentKey = registry.Key[content.Page]("gigagent.content")

// Dependencies holds all the services that the module requires.
type Dependencies struct {
	Renderer rendering.Renderer
	// Content overrides the default catalog. Used by tests.
	Content *content.Page
}

// GigAgentModule serves the GigAgent landing page.
type GigAgentModule struct {
	module.BaseModule
	renderer rendering.Renderer
	content  *content.Page
}

// New creates a new instance of the module.
func New(deps Dependencies) *GigAgentModule {
	return &GigAgentModule{
		renderer: deps.Renderer,
		content:  deps.Content,
	}
}

// Name returns the module's unique identifier.
func (m *GigAgentModule) Name() string {
	return "gigagent"
}

// Register validates the catalog and publishes it in the registry. An
// invalid catalog stops startup.
func (m *GigAgentModule) Register(reg *registry.Registry) error {
	page := content.Default()
	if m.content != nil {
		page = *m.content
	}
	if err := content.Validate(page); err != nil {
		return err
	}
	registry.Set(reg, ContentKey, page)
	slog.Info("Registered GigAgent content", "faqs", len(page.FAQs), "tiers", len(page.Tiers))
	return nil
}

// Boot mounts the landing page behind the per-IP rate limiter. HEAD is served
// too, for link-preview crawlers and uptime checks.
func (m *GigAgentModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting GigAgentModule: Setting up routes...")

	cfg := reg.Config()
	handler := NewHandler(m.renderer, registry.MustGet(reg, ContentKey), pages.DocumentOptions{
		BaseURL:       cfg.GetAppBaseURL(),
		StylesheetURL: cfg.GetStylesheetURL(),
	})

	g.Use(middleware.RateLimiter(cfg.GetRateLimitPerMinute()))
	g.Match([]string{http.MethodGet, http.MethodHead}, "", handler.Get)
	return nil
}
