package workflow

import (
	"context"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/conversation"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/supervisor"
)

// Execute drives the state machine: supervisor picks a handler, the handler
// appends one turn and hands control back, until the supervisor finishes.
// Handlers and supervisor absorb their own failures, so the loop itself can
// only fail on invalid input.
func (uc *implUseCase) Execute(ctx context.Context, in ExecuteInput) (ExecuteOutput, error) {
	if err := appointment.ValidatePatientID(in.SubjectID); err != nil {
		return ExecuteOutput{}, err
	}

	state := conversation.NewState(in.Query, in.SubjectID)
	uc.l.Infof(ctx, "internal.workflow.Execute: subject=%d query=%q", in.SubjectID, in.Query)

	for {
		decision := uc.router.Decide(ctx, state)
		state.Next = string(decision.Next)
		state.Rationale = decision.Rationale

		switch decision.Next {
		case supervisor.NextInformation:
			uc.information.Handle(ctx, state)
		case supervisor.NextBooking:
			uc.booking.Handle(ctx, state)
		default:
			uc.l.Infof(ctx, "internal.workflow.Execute: finished after %d handler turns (%s)",
				state.HandlerTurns(), state.Rationale)
			return ExecuteOutput{
				Messages:  assistantTurns(state),
				Next:      state.Next,
				Rationale: state.Rationale,
			}, nil
		}
	}
}

func assistantTurns(state *conversation.State) []conversation.Turn {
	turns := make([]conversation.Turn, 0, len(state.Messages))
	for _, m := range state.Messages {
		if m.Role == conversation.RoleAssistant {
			turns = append(turns, m)
		}
	}
	return turns
}
