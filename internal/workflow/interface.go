package workflow

import (
	"context"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/conversation"
)

// UseCase runs a user request through the supervisor/handler loop.
type UseCase interface {
	Execute(ctx context.Context, in ExecuteInput) (ExecuteOutput, error)
}

// Handler is one routed step: it appends exactly one assistant turn and
// returns control to the supervisor.
type Handler interface {
	Handle(ctx context.Context, state *conversation.State)
}
