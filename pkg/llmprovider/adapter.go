package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cchtnn/doctor-appointment-multiagent/pkg/groq"
	"github.com/cchtnn/doctor-appointment-multiagent/pkg/openai"
)

// GroqAdapter adapts pkg/groq to the llmprovider.Provider interface
type GroqAdapter struct {
	client groq.IGroq
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client}
}

// GenerateContent implements the Provider interface
func (a *GroqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	groqReq := &groq.Request{
		Messages:    convertToGroqMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if len(req.Tools) > 0 {
		groqReq.Tools = convertToGroqTools(req.Tools)
	}

	resp, err := a.client.GenerateContent(ctx, groqReq)
	if err != nil {
		return nil, fmt.Errorf("groq: %w", err)
	}

	return convertFromGroqResponse(resp), nil
}

// Name returns the provider name
func (a *GroqAdapter) Name() string {
	return "groq"
}

// Model returns the model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

func convertToGroqMessages(req *Request) []groq.Message {
	messages := make([]groq.Message, 0, len(req.Messages)+1)

	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		messages = append(messages, groq.Message{
			Role:    "system",
			Content: req.SystemInstruction.Parts[0].Text,
		})
	}

	for _, msg := range req.Messages {
		gMsg := groq.Message{Role: msg.Role}

		if len(msg.Parts) > 0 && msg.Parts[0].Text != "" {
			gMsg.Content = msg.Parts[0].Text
		}

		if len(msg.Parts) > 0 && msg.Parts[0].FunctionCall != nil {
			fc := msg.Parts[0].FunctionCall
			argsJSON, _ := json.Marshal(fc.Args)
			gMsg.Role = "assistant"
			gMsg.ToolCalls = []groq.ToolCall{
				{
					ID:   "call_" + fc.Name,
					Type: "function",
					Function: groq.FunctionCall{
						Name:      fc.Name,
						Arguments: string(argsJSON),
					},
				},
			}
		}

		if len(msg.Parts) > 0 && msg.Parts[0].FunctionResponse != nil {
			fr := msg.Parts[0].FunctionResponse
			gMsg.Role = "tool"
			gMsg.ToolCallID = "call_" + fr.Name
			gMsg.Name = fr.Name
			responseJSON, _ := json.Marshal(fr.Response)
			gMsg.Content = string(responseJSON)
		}

		messages = append(messages, gMsg)
	}

	return messages
}

func convertToGroqTools(tools []Tool) []groq.Tool {
	gTools := make([]groq.Tool, len(tools))
	for i, t := range tools {
		gTools[i] = groq.Tool{
			Type: "function",
			Function: groq.FunctionDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return gTools
}

func convertFromGroqResponse(resp *groq.Response) *Response {
	out := &Response{
		Content:      Message{Role: "assistant", Parts: []Part{}},
		ProviderName: "groq",
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}

	if len(resp.Choices) == 0 {
		return out
	}

	choice := resp.Choices[0]

	if choice.Message.Content != "" {
		out.Content.Parts = append(out.Content.Parts, Part{Text: choice.Message.Content})
	}

	if len(choice.Message.ToolCalls) > 0 {
		tc := choice.Message.ToolCalls[0]
		var args map[string]interface{}
		json.Unmarshal([]byte(tc.Function.Arguments), &args)
		out.Content.Parts = append(out.Content.Parts, Part{
			FunctionCall: &FunctionCall{
				Name: tc.Function.Name,
				Args: args,
			},
		})
	}

	return out
}

// OpenAIAdapter adapts pkg/openai to the llmprovider.Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// GenerateContent implements the Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	oaReq := &openai.Request{
		Messages:    convertToOpenAIMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if len(req.Tools) > 0 {
		oaReq.Tools = convertToOpenAITools(req.Tools)
	}

	resp, err := a.client.GenerateContent(ctx, oaReq)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	return convertFromOpenAIResponse(resp), nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func convertToOpenAIMessages(req *Request) []openai.Message {
	messages := make([]openai.Message, 0, len(req.Messages)+1)

	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		messages = append(messages, openai.Message{
			Role:    "system",
			Content: req.SystemInstruction.Parts[0].Text,
		})
	}

	for _, msg := range req.Messages {
		oMsg := openai.Message{Role: msg.Role}

		if len(msg.Parts) > 0 && msg.Parts[0].Text != "" {
			oMsg.Content = msg.Parts[0].Text
		}

		if len(msg.Parts) > 0 && msg.Parts[0].FunctionCall != nil {
			fc := msg.Parts[0].FunctionCall
			argsJSON, _ := json.Marshal(fc.Args)
			oMsg.Role = "assistant"
			oMsg.ToolCalls = []openai.ToolCall{
				{
					ID:   "call_" + fc.Name,
					Type: "function",
					Function: openai.FunctionCall{
						Name:      fc.Name,
						Arguments: string(argsJSON),
					},
				},
			}
		}

		if len(msg.Parts) > 0 && msg.Parts[0].FunctionResponse != nil {
			fr := msg.Parts[0].FunctionResponse
			oMsg.Role = "tool"
			oMsg.ToolCallID = "call_" + fr.Name
			oMsg.Name = fr.Name
			responseJSON, _ := json.Marshal(fr.Response)
			oMsg.Content = string(responseJSON)
		}

		messages = append(messages, oMsg)
	}

	return messages
}

func convertToOpenAITools(tools []Tool) []openai.Tool {
	oTools := make([]openai.Tool, len(tools))
	for i, t := range tools {
		oTools[i] = openai.Tool{
			Type: "function",
			Function: openai.FunctionDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return oTools
}

func convertFromOpenAIResponse(resp *openai.Response) *Response {
	out := &Response{
		Content:      Message{Role: "assistant", Parts: []Part{}},
		ProviderName: "openai",
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}

	if len(resp.Choices) == 0 {
		return out
	}

	choice := resp.Choices[0]

	if choice.Message.Content != "" {
		out.Content.Parts = append(out.Content.Parts, Part{Text: choice.Message.Content})
	}

	if len(choice.Message.ToolCalls) > 0 {
		tc := choice.Message.ToolCalls[0]
		var args map[string]interface{}
		json.Unmarshal([]byte(tc.Function.Arguments), &args)
		out.Content.Parts = append(out.Content.Parts, Part{
			FunctionCall: &FunctionCall{
				Name: tc.Function.Name,
				Args: args,
			},
		})
	}

	return out
}
