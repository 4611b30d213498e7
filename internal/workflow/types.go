package workflow

import "github.com/cchtnn/doctor-appointment-multiagent/internal/conversation"

// ExecuteInput is one user request entering the routing loop.
type ExecuteInput struct {
	Query     string
	SubjectID int
}

// ExecuteOutput carries everything the caller sees: the assistant turns
// accumulated across the loop plus the final routing verdict.
type ExecuteOutput struct {
	Messages  []conversation.Turn
	Next      string
	Rationale string
}
