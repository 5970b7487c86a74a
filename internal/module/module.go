package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gigagent/internal/registry"
)

// Module defines the contract for a self-contained feature of the site.
type Module interface {
	// Name returns a unique identifier for the module. The server mounts the
	// module's routes under "/<name>".
	Name() string

	// Register is called during startup to register the module's services
	// with the central registry.
	Register(reg *registry.Registry) error

	// Boot is called after all modules have registered. Routes are set up here.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown is called during graceful shutdown.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op implementations for Module methods. Modules
// embed it to skip the hooks they don't need.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error {
	return nil
}
