package orchestrator

import (
	"context"
	"fmt"

	"github.com/cchtnn/doctor-appointment-multiagent/pkg/llmprovider"
)

// Run executes the tool dialogue: Reason -> Act -> Observe, until the model
// returns a plain answer or the step budget runs out. The step budget is a
// hard stop, not an error: running out returns whatever text the last
// response carried, or empty.
func (o *Orchestrator) Run(ctx context.Context, systemPrompt, query string) (string, error) {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: systemPrompt}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: query}}},
		},
		Tools: o.registry.ToFunctionDefinitions(),
	}

	lastText := ""
	for step := 0; step < MaxDialogueSteps; step++ {
		o.l.Infof(ctx, LogMsgDialogueStep, step+1, MaxDialogueSteps)

		resp, err := o.llm.GenerateContent(ctx, req)
		if err != nil {
			return "", fmt.Errorf(ErrMsgDialogueLLMError+": %w", step, err)
		}
		if len(resp.Content.Parts) == 0 {
			return "", fmt.Errorf(ErrMsgEmptyLLMResponse)
		}

		call := resp.FunctionCall()
		if call == nil {
			o.l.Infof(ctx, LogMsgDialogueFinished, step+1)
			return resp.Text(), nil
		}
		lastText = resp.Text()

		o.l.Infof(ctx, LogMsgDialogueCallingTool, call.Name, call.Args)

		var toolResult interface{}
		tool, ok := o.registry.Get(call.Name)
		if !ok {
			o.l.Errorf(ctx, "Tool %s not found", call.Name)
			toolResult = map[string]string{"error": "tool not found"}
		} else {
			res, err := tool.Execute(ctx, call.Args)
			if err != nil {
				o.l.Errorf(ctx, LogMsgToolExecutionError, call.Name, err)
				toolResult = map[string]string{"error": err.Error()}
			} else {
				toolResult = res
			}
		}

		req.Messages = append(req.Messages, llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{FunctionCall: call}},
		})
		req.Messages = append(req.Messages, llmprovider.Message{
			Role: "tool",
			Parts: []llmprovider.Part{{
				FunctionResponse: &llmprovider.FunctionResponse{
					Name:     call.Name,
					Response: toolResult,
				},
			}},
		})
	}

	o.l.Warnf(ctx, LogMsgDialogueMaxSteps, MaxDialogueSteps)
	return lastText, nil
}
