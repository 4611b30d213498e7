package orchestrator

import (
	"github.com/cchtnn/doctor-appointment-multiagent/internal/agent"
	"github.com/cchtnn/doctor-appointment-multiagent/pkg/llmprovider"
	pkgLog "github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
)

// Orchestrator runs a bounded tool dialogue for one handler: the model
// reasons, calls tools from the handler's registry, and eventually produces
// a plain text answer.
type Orchestrator struct {
	llm      *llmprovider.Manager
	registry *agent.ToolRegistry
	l        pkgLog.Logger
}

func New(llm *llmprovider.Manager, registry *agent.ToolRegistry, l pkgLog.Logger) *Orchestrator {
	return &Orchestrator{
		llm:      llm,
		registry: registry,
		l:        l,
	}
}
