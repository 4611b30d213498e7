package supervisor

import (
	"context"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/conversation"
	"github.com/cchtnn/doctor-appointment-multiagent/pkg/llmprovider"
	"github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
)

// Router picks the next handler (or finish) for a conversation state.
type Router interface {
	Decide(ctx context.Context, state *conversation.State) Decision
}

// Supervisor routes with a structured LLM decision and a deterministic
// fallback policy. It never fails: every path resolves to a Decision.
type Supervisor struct {
	llm *llmprovider.Manager
	l   log.Logger
}

// Ensure Supervisor implements Router interface
var _ Router = (*Supervisor)(nil)

// New creates a new Supervisor
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(llm *llmprovider.Manager, l log.Logger) *Supervisor {
	return &Supervisor{
		llm: llm,
		l:   l,
	}
}
