package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/conversation"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/supervisor"
	pkgLog "github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
)

// scriptedRouter replays a fixed decision sequence.
type scriptedRouter struct {
	decisions []supervisor.Decision
	step      int
}

func (r *scriptedRouter) Decide(ctx context.Context, state *conversation.State) supervisor.Decision {
	d := r.decisions[r.step]
	if r.step < len(r.decisions)-1 {
		r.step++
	}
	return d
}

type stubHandler struct {
	origin conversation.Origin
	text   string
	calls  int
}

func (h *stubHandler) Handle(ctx context.Context, state *conversation.State) {
	h.calls++
	state.AppendAssistant(h.origin, h.text)
}

func newWorkflow(router supervisor.Router, info, booking Handler) UseCase {
	return New(pkgLog.Init(pkgLog.ZapConfig{Level: "error", Mode: "development"}), router, info, booking)
}

func TestExecuteCheckAndBookFlow(t *testing.T) {
	router := &scriptedRouter{decisions: []supervisor.Decision{
		{Next: supervisor.NextInformation, Rationale: "check first"},
		{Next: supervisor.NextBooking, Rationale: "availability confirmed"},
		{Next: supervisor.NextFinish, Rationale: "booking complete"},
	}}
	info := &stubHandler{origin: conversation.OriginInformation, text: "Dr. Emily Johnson: 8:00 PM"}
	booking := &stubHandler{origin: conversation.OriginBooking, text: "✓ Appointment successfully booked!"}

	out, err := newWorkflow(router, info, booking).Execute(context.Background(), ExecuteInput{
		Query:     "check and book a general dentist on 08-08-2024",
		SubjectID: 1000082,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if info.calls != 1 || booking.calls != 1 {
		t.Errorf("handler calls: info=%d booking=%d", info.calls, booking.calls)
	}
	if len(out.Messages) != 2 {
		t.Fatalf("got %d assistant turns, want 2", len(out.Messages))
	}
	if out.Messages[0].Origin != conversation.OriginInformation ||
		out.Messages[1].Origin != conversation.OriginBooking {
		t.Errorf("turn origins: %s, %s", out.Messages[0].Origin, out.Messages[1].Origin)
	}
	if out.Next != string(supervisor.NextFinish) || out.Rationale != "booking complete" {
		t.Errorf("verdict = %s / %q", out.Next, out.Rationale)
	}
}

func TestExecuteImmediateFinish(t *testing.T) {
	router := &scriptedRouter{decisions: []supervisor.Decision{
		{Next: supervisor.NextFinish, Rationale: "unclear request"},
	}}
	info := &stubHandler{origin: conversation.OriginInformation}
	booking := &stubHandler{origin: conversation.OriginBooking}

	out, err := newWorkflow(router, info, booking).Execute(context.Background(), ExecuteInput{
		Query:     "hello",
		SubjectID: 1000082,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Messages) != 0 {
		t.Errorf("got %d turns, want 0", len(out.Messages))
	}
	if info.calls+booking.calls != 0 {
		t.Error("handlers ran despite immediate finish")
	}
}

func TestExecuteRejectsBadSubjectID(t *testing.T) {
	router := &scriptedRouter{decisions: []supervisor.Decision{{Next: supervisor.NextFinish}}}
	uc := newWorkflow(router, &stubHandler{}, &stubHandler{})

	_, err := uc.Execute(context.Background(), ExecuteInput{Query: "check", SubjectID: 42})
	if !errors.Is(err, appointment.ErrInvalidPatientID) {
		t.Errorf("got %v, want ErrInvalidPatientID", err)
	}
}

// The supervisor owns termination; the workflow must faithfully keep
// dispatching until told to stop, even if that means many rounds.
func TestExecuteLoopsUntilFinish(t *testing.T) {
	decisions := make([]supervisor.Decision, 0, 7)
	for i := 0; i < 6; i++ {
		decisions = append(decisions, supervisor.Decision{Next: supervisor.NextInformation})
	}
	decisions = append(decisions, supervisor.Decision{Next: supervisor.NextFinish, Rationale: "Maximum iterations reached"})

	router := &scriptedRouter{decisions: decisions}
	info := &stubHandler{origin: conversation.OriginInformation, text: "still looking"}

	out, err := newWorkflow(router, info, &stubHandler{origin: conversation.OriginBooking}).Execute(
		context.Background(), ExecuteInput{Query: "check", SubjectID: 1000082})
	if err != nil {
		t.Fatal(err)
	}
	if info.calls != 6 {
		t.Errorf("information ran %d times, want 6", info.calls)
	}
	if out.Rationale != "Maximum iterations reached" {
		t.Errorf("rationale = %q", out.Rationale)
	}
}
