package booking

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/conversation"
	"github.com/cchtnn/doctor-appointment-multiagent/pkg/llmprovider"
	pkgLog "github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
)

type fixedProvider struct {
	text string
	err  error
}

func (p *fixedProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{Text: p.text}},
		},
	}, nil
}

func (p *fixedProvider) Name() string  { return "fixed" }
func (p *fixedProvider) Model() string { return "test-model" }

type mutationRecorder struct {
	setErr  error
	lastSet appointment.SetInput
	sets    int
}

func (u *mutationRecorder) CheckByDoctor(ctx context.Context, in appointment.CheckByDoctorInput) (appointment.CheckByDoctorOutput, error) {
	return appointment.CheckByDoctorOutput{}, nil
}

func (u *mutationRecorder) CheckBySpecialization(ctx context.Context, in appointment.CheckBySpecializationInput) (appointment.CheckBySpecializationOutput, error) {
	return appointment.CheckBySpecializationOutput{}, nil
}

func (u *mutationRecorder) Set(ctx context.Context, in appointment.SetInput) error {
	u.sets++
	u.lastSet = in
	return u.setErr
}

func (u *mutationRecorder) Cancel(ctx context.Context, in appointment.CancelInput) error {
	return nil
}

func (u *mutationRecorder) Reschedule(ctx context.Context, in appointment.RescheduleInput) error {
	return nil
}

func newHandler(p llmprovider.Provider, uc appointment.UseCase) *Handler {
	l := pkgLog.Init(pkgLog.ZapConfig{Level: "error", Mode: "development"})
	mgr := llmprovider.NewManager([]llmprovider.Provider{p}, &llmprovider.Config{RetryAttempts: 1}, l)
	return New(mgr, uc, l)
}

func stateWithAvailability(t *testing.T) *conversation.State {
	t.Helper()
	state := conversation.NewState("check and book a general dentist on 08-08-2024", 1000082)
	state.AppendAssistant(conversation.OriginInformation,
		"Available general dentist appointments on 08-08-2024:\n\nDr. Emily Johnson:\n8:00 PM")
	return state
}

func TestHandleDialogueAnswer(t *testing.T) {
	uc := &mutationRecorder{}
	h := newHandler(&fixedProvider{text: "✓ Appointment successfully booked!"}, uc)
	state := stateWithAvailability(t)

	h.Handle(context.Background(), state)

	last := state.LastTurn()
	if last.Origin != conversation.OriginBooking {
		t.Fatalf("origin = %s", last.Origin)
	}
	if last.Content != "✓ Appointment successfully booked!" {
		t.Errorf("content = %q", last.Content)
	}
	// The model answered directly, so the direct fallback must not fire.
	if uc.sets != 0 {
		t.Errorf("direct set fired %d times", uc.sets)
	}
}

func TestHandleDirectFallbackOnDialogueFailure(t *testing.T) {
	uc := &mutationRecorder{}
	h := newHandler(&fixedProvider{err: errors.New("provider down")}, uc)
	state := stateWithAvailability(t)

	h.Handle(context.Background(), state)

	if uc.sets != 1 {
		t.Fatalf("direct set fired %d times, want 1", uc.sets)
	}
	want := appointment.SetInput{DateTime: "08-08-2024 20:00", PatientID: 1000082, DoctorName: "emily johnson"}
	if uc.lastSet != want {
		t.Errorf("set input = %+v, want %+v", uc.lastSet, want)
	}
	last := state.LastTurn()
	if !strings.Contains(last.Content, "successfully booked") {
		t.Errorf("content = %q", last.Content)
	}
}

func TestHandleDirectFallbackOnErrorIndicator(t *testing.T) {
	uc := &mutationRecorder{}
	h := newHandler(&fixedProvider{text: "I hit an error calling the tool"}, uc)
	state := stateWithAvailability(t)

	h.Handle(context.Background(), state)

	if uc.sets != 1 {
		t.Errorf("direct set fired %d times, want 1", uc.sets)
	}
}

func TestHandleIncompleteExtraction(t *testing.T) {
	uc := &mutationRecorder{}
	h := newHandler(&fixedProvider{err: errors.New("provider down")}, uc)

	state := conversation.NewState("book me an appointment", 1000082)
	state.AppendAssistant(conversation.OriginInformation,
		"No available slots for general dentist on 09-08-2024. All slots are booked.")

	h.Handle(context.Background(), state)

	if uc.sets != 0 {
		t.Errorf("set fired despite incomplete extraction")
	}
	last := state.LastTurn()
	if !strings.HasPrefix(last.Content, "Could not extract booking details.") {
		t.Errorf("content = %q", last.Content)
	}
	if !strings.Contains(last.Content, "Date: 09-08-2024") {
		t.Errorf("missing-fields report = %q", last.Content)
	}
}

func TestHandleNoInformationTurn(t *testing.T) {
	uc := &mutationRecorder{}
	h := newHandler(&fixedProvider{err: errors.New("provider down")}, uc)
	state := conversation.NewState("book something", 1000082)

	h.Handle(context.Background(), state)

	if uc.sets != 0 {
		t.Error("set fired with nothing extracted")
	}
	if got := state.HandlerTurns(); got != 1 {
		t.Errorf("appended %d turns, want 1", got)
	}
	if state.LastTurn().Origin != conversation.OriginBooking {
		t.Errorf("origin = %s", state.LastTurn().Origin)
	}
}

func TestHandleDirectFallbackReportsAlreadyBooked(t *testing.T) {
	uc := &mutationRecorder{setErr: appointment.ErrSlotAlreadyBooked}
	h := newHandler(&fixedProvider{err: errors.New("provider down")}, uc)
	state := stateWithAvailability(t)

	h.Handle(context.Background(), state)

	last := state.LastTurn()
	if !strings.Contains(last.Content, "already booked") {
		t.Errorf("content = %q", last.Content)
	}
}
