package conversation

// Role mirrors chat roles on the wire.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Origin records which side of the system produced a turn. The routing logic
// keys off it, so it is kept separate from the chat role.
type Origin string

const (
	OriginUser        Origin = "user"
	OriginInformation Origin = "information"
	OriginBooking     Origin = "booking"
)

// Turn is one message in the running conversation.
type Turn struct {
	Role    Role   `json:"role"`
	Origin  Origin `json:"origin"`
	Content string `json:"content"`
}

// State carries everything the router and handlers share for one request.
type State struct {
	Messages  []Turn
	SubjectID int
	Next      string
	Rationale string
}

// NewState opens a conversation with the user's query as the first turn.
func NewState(query string, subjectID int) *State {
	return &State{
		Messages: []Turn{{
			Role:    RoleUser,
			Origin:  OriginUser,
			Content: query,
		}},
		SubjectID: subjectID,
	}
}

func (s *State) AppendUser(content string) {
	s.Messages = append(s.Messages, Turn{Role: RoleUser, Origin: OriginUser, Content: content})
}

func (s *State) AppendAssistant(origin Origin, content string) {
	s.Messages = append(s.Messages, Turn{Role: RoleAssistant, Origin: origin, Content: content})
}

// CountByOrigin reports how many turns a given side has produced so far.
func (s *State) CountByOrigin(origin Origin) int {
	n := 0
	for _, m := range s.Messages {
		if m.Origin == origin {
			n++
		}
	}
	return n
}

// HandlerTurns counts every non-user turn, which is what the loop guard
// bounds.
func (s *State) HandlerTurns() int {
	n := 0
	for _, m := range s.Messages {
		if m.Origin != OriginUser {
			n++
		}
	}
	return n
}

// LastTurn returns the most recent turn, or a zero Turn when empty.
func (s *State) LastTurn() Turn {
	if len(s.Messages) == 0 {
		return Turn{}
	}
	return s.Messages[len(s.Messages)-1]
}

// FirstUserMessage returns the opening query, which holds the user's full
// original intent.
func (s *State) FirstUserMessage() string {
	for _, m := range s.Messages {
		if m.Origin == OriginUser {
			return m.Content
		}
	}
	return ""
}

// LastByOrigin returns the newest turn from the given origin.
func (s *State) LastByOrigin(origin Origin) (Turn, bool) {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Origin == origin {
			return s.Messages[i], true
		}
	}
	return Turn{}, false
}
