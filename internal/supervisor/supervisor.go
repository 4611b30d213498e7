package supervisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/conversation"
	"github.com/cchtnn/doctor-appointment-multiagent/pkg/llmprovider"
)

// Decide picks the next handler for the given state.
// Convention: Method accepts context.Context as first parameter
func (s *Supervisor) Decide(ctx context.Context, state *conversation.State) Decision {
	infoCalls := state.CountByOrigin(conversation.OriginInformation)
	bookingCalls := state.CountByOrigin(conversation.OriginBooking)

	// Prevent infinite loops
	if infoCalls+bookingCalls >= MaxHandlerTurns {
		s.l.Warnf(ctx, "%s: handler turns %d reached ceiling %d",
			LogPrefixDecide, infoCalls+bookingCalls, MaxHandlerTurns)
		return Decision{Next: NextFinish, Rationale: ReasonMaxIterations}
	}

	if decision, ok := s.structuredDecision(ctx, state, infoCalls, bookingCalls); ok {
		return decision
	}

	return s.fallback(ctx, state, bookingCalls)
}

// structuredDecision asks the model for a routing JSON. Any failure —
// transport, empty answer, bad JSON, out-of-enum target — reports not-ok so
// the caller can fall back; it never surfaces an error.
func (s *Supervisor) structuredDecision(ctx context.Context, state *conversation.State, infoCalls, bookingCalls int) (Decision, bool) {
	lastFrom := string(state.LastTurn().Origin)
	if lastFrom == "" {
		lastFrom = string(conversation.OriginUser)
	}

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role: "system",
			Parts: []llmprovider.Part{{
				Text: fmt.Sprintf(PromptDecisionSystem, state.SubjectID, infoCalls, bookingCalls, lastFrom),
			}},
		},
		Temperature: DecisionTemperature,
	}
	for _, m := range state.Messages {
		req.Messages = append(req.Messages, llmprovider.Message{
			Role:  string(m.Role),
			Parts: []llmprovider.Part{{Text: m.Content}},
		})
	}

	resp, err := s.llm.GenerateContent(ctx, req)
	if err != nil {
		s.l.Warnf(ctx, "%s: %s: %v", LogPrefixDecide, ErrMsgLLMCallFailed, err)
		return Decision{}, false
	}

	responseText := strings.TrimSpace(resp.Text())
	if responseText == "" {
		s.l.Warnf(ctx, "%s: %s", LogPrefixDecide, ErrMsgEmptyResponse)
		return Decision{}, false
	}

	// Strip markdown code blocks if present (```json ... ```)
	if strings.HasPrefix(responseText, "```json") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	} else if strings.HasPrefix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	}

	var decision Decision
	if err := json.Unmarshal([]byte(responseText), &decision); err != nil {
		s.l.Warnf(ctx, "%s: %s: %v", LogPrefixDecide, ErrMsgJSONParseFailed, err)
		return Decision{}, false
	}
	if !decision.Next.Valid() {
		s.l.Warnf(ctx, "%s: "+ErrMsgInvalidNext, LogPrefixDecide, decision.Next)
		return Decision{}, false
	}

	s.l.Infof(ctx, "%s: routed to %s (%s)", LogPrefixDecide, decision.Next, decision.Rationale)
	return decision, true
}

// fallback is the deterministic routing policy, evaluated in fixed order.
func (s *Supervisor) fallback(ctx context.Context, state *conversation.State, bookingCalls int) Decision {
	last := state.LastTurn()
	lastContent := strings.ToLower(last.Content)

	firstMsg := strings.ToLower(state.FirstUserMessage())
	isCheckAndBook := strings.Contains(firstMsg, "check") && strings.Contains(firstMsg, "book")

	var decision Decision
	switch {
	case last.Origin == conversation.OriginInformation:
		noAvailability := strings.Contains(lastContent, "no available") ||
			strings.Contains(lastContent, "not available")
		switch {
		case (strings.Contains(lastContent, "available") || strings.Contains(lastContent, "slot")) && !noAvailability:
			decision = Decision{Next: NextBooking, Rationale: ReasonFallbackAvailabilityConfirmed}
		case noAvailability:
			decision = Decision{Next: NextFinish, Rationale: ReasonFallbackNoAvailability}
		case isCheckAndBook && bookingCalls == 0:
			decision = Decision{Next: NextBooking, Rationale: ReasonFallbackProceedToBooking}
		default:
			decision = Decision{Next: NextFinish, Rationale: ReasonFallbackInfoProvided}
		}

	case last.Origin == conversation.OriginBooking:
		decision = Decision{Next: NextFinish, Rationale: ReasonFallbackBookingComplete}

	case state.HandlerTurns() == 0:
		switch {
		case strings.Contains(firstMsg, "check") || strings.Contains(firstMsg, "available"):
			decision = Decision{Next: NextInformation, Rationale: ReasonFallbackCheckFirst}
		case strings.Contains(firstMsg, "book") || strings.Contains(firstMsg, "appointment"):
			decision = Decision{Next: NextBooking, Rationale: ReasonFallbackDirectBooking}
		default:
			decision = Decision{Next: NextFinish, Rationale: ReasonFallbackUnclearRequest}
		}

	default:
		decision = Decision{Next: NextFinish, Rationale: ReasonFallbackEndConversation}
	}

	s.l.Infof(ctx, "%s: fallback routed to %s (%s)", LogPrefixDecide, decision.Next, decision.Rationale)
	return decision
}
