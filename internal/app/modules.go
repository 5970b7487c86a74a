package app

import (
	"github.com/nfrund/gigagent/internal/module"
	"github.com/nfrund/gigagent/internal/modules/gigagent"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		gigagent.New(gigagentDeps(deps)),
	}
}
