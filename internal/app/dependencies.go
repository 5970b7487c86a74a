package app

import (
	"github.com/nfrund/gigagent/internal/modules/gigagent"
	"github.com/nfrund/gigagent/internal/rendering"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the server to wire up the modules. Configuration
// reaches modules through the registry.
type Dependencies struct {
	Renderer rendering.Renderer
}

// gigagentDeps creates the dependency struct for the gigagent module.
func gigagentDeps(deps Dependencies) gigagent.Dependencies {
	return gigagent.Dependencies{
		Renderer: deps.Renderer,
	}
}
