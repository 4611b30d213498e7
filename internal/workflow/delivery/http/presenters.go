package http

import (
	"github.com/cchtnn/doctor-appointment-multiagent/internal/conversation"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/workflow"
)

// --- Request DTOs ---

// executeReq uses the original wire names: the free-text query travels as
// "messages", the subject id as "id_number".
type executeReq struct {
	Messages string `json:"messages"  binding:"required,min=1"`
	IDNumber int    `json:"id_number" binding:"required"`
}

func (r executeReq) toInput() workflow.ExecuteInput {
	return workflow.ExecuteInput{
		Query:     r.Messages,
		SubjectID: r.IDNumber,
	}
}

// --- Response DTOs ---

type turnResp struct {
	Role    string `json:"role"`
	Origin  string `json:"origin"`
	Content string `json:"content"`
}

type executeResp struct {
	Messages  []turnResp `json:"messages"`
	Next      string     `json:"next"`
	Rationale string     `json:"rationale"`
}

func (h *handler) newExecuteResp(out workflow.ExecuteOutput) executeResp {
	turns := make([]turnResp, len(out.Messages))
	for i, m := range out.Messages {
		turns[i] = newTurnResp(m)
	}
	return executeResp{
		Messages:  turns,
		Next:      out.Next,
		Rationale: out.Rationale,
	}
}

func newTurnResp(t conversation.Turn) turnResp {
	return turnResp{
		Role:    string(t.Role),
		Origin:  string(t.Origin),
		Content: t.Content,
	}
}
