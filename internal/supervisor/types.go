package supervisor

// Next names where the loop goes after a routing decision.
type Next string

const (
	NextInformation Next = "information"
	NextBooking     Next = "booking"
	NextFinish      Next = "finish"
)

// Valid reports whether a decoded routing target is one of the three
// allowed values.
func (n Next) Valid() bool {
	switch n {
	case NextInformation, NextBooking, NextFinish:
		return true
	}
	return false
}

// Decision is the structured routing outcome applied to the conversation
// state after every step.
type Decision struct {
	Next      Next   `json:"next"`
	Rationale string `json:"reasoning"`
}
