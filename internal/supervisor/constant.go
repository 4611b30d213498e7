package supervisor

// Log prefixes
const (
	LogPrefixDecide = "internal.supervisor.Decide"
)

// MaxHandlerTurns is the hard routing ceiling: once the handlers have
// produced this many turns combined, the loop ends no matter what the
// conversation says.
const MaxHandlerTurns = 6

// DecisionTemperature keeps the routing decision as deterministic as the
// model allows.
const DecisionTemperature = 0.1

// Routing prompt
const (
	PromptDecisionSystem = `You are a supervisor routing a patient's request between two specialized agents of a dental practice.

AGENTS:
1. information - checks doctor availability. It can NOT book, cancel or reschedule anything.
2. booking - books, cancels or reschedules an appointment. It can NOT answer availability questions.

ROUTING RULES:
1. If the user asks to "check availability", route to information
2. If the user asks to "check AND book", FIRST route to information to check availability
3. After information confirms availability, route to booking to complete the booking
4. If booking was completed (success or failure), route to finish
5. If no progress is being made, route to finish

Current state:
- Patient ID: %d
- Information checks done: %d
- Booking attempts done: %d
- Last message was from: %s

Respond with JSON only: {"next": "information"|"booking"|"finish", "reasoning": "explanation"}`
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgEmptyResponse   = "Empty LLM response, using deterministic fallback"
	ErrMsgJSONParseFailed = "Failed to parse routing JSON, using deterministic fallback"
	ErrMsgInvalidNext     = "Routing target %q is not valid, using deterministic fallback"
)

// Rationale texts
const (
	ReasonMaxIterations = "Maximum iterations reached"

	ReasonFallbackAvailabilityConfirmed = "Fallback: availability confirmed, routing to booking"
	ReasonFallbackNoAvailability        = "Fallback: no availability found"
	ReasonFallbackProceedToBooking      = "Fallback: proceeding to booking as requested"
	ReasonFallbackInfoProvided          = "Fallback: information provided"
	ReasonFallbackBookingComplete       = "Fallback: booking complete"
	ReasonFallbackCheckFirst            = "Fallback: checking availability first"
	ReasonFallbackDirectBooking         = "Fallback: direct booking request"
	ReasonFallbackUnclearRequest        = "Fallback: unclear request"
	ReasonFallbackEndConversation       = "Fallback: ending conversation"
)
