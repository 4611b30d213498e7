package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/conversation"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/workflow"
	pkgLog "github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
	"github.com/cchtnn/doctor-appointment-multiagent/pkg/response"
)

type stubUseCase struct {
	out    workflow.ExecuteOutput
	err    error
	lastIn workflow.ExecuteInput
	calls  int
}

func (s *stubUseCase) Execute(ctx context.Context, in workflow.ExecuteInput) (workflow.ExecuteOutput, error) {
	s.calls++
	s.lastIn = in
	return s.out, s.err
}

func newTestServer(uc workflow.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(pkgLog.Init(pkgLog.ZapConfig{Level: "error", Mode: "development"}), uc)
	r := gin.New()
	r.POST("/execute", h.Execute)
	return r
}

func postExecute(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/execute", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestExecuteEndpoint(t *testing.T) {
	uc := &stubUseCase{out: workflow.ExecuteOutput{
		Messages: []conversation.Turn{
			{Role: conversation.RoleAssistant, Origin: conversation.OriginInformation, Content: "Dr. Emily Johnson: 8:00 PM"},
			{Role: conversation.RoleAssistant, Origin: conversation.OriginBooking, Content: "✓ Appointment successfully booked!"},
		},
		Next:      "finish",
		Rationale: "booking complete",
	}}
	r := newTestServer(uc)

	w := postExecute(r, `{"messages": "check and book a general dentist on 08-08-2024", "id_number": 1000082}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	if resp.ErrorCode != 0 {
		t.Errorf("error code = %d", resp.ErrorCode)
	}

	if uc.lastIn.Query != "check and book a general dentist on 08-08-2024" || uc.lastIn.SubjectID != 1000082 {
		t.Errorf("use case input = %+v", uc.lastIn)
	}

	body := w.Body.String()
	if !strings.Contains(body, "successfully booked") || !strings.Contains(body, `"origin":"booking"`) {
		t.Errorf("body missing turns: %s", body)
	}
}

func TestExecuteEndpointValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing messages", body: `{"id_number": 1000082}`},
		{name: "missing id", body: `{"messages": "check availability"}`},
		{name: "six digit id", body: `{"messages": "check availability", "id_number": 123456}`},
		{name: "nine digit id", body: `{"messages": "check availability", "id_number": 123456789}`},
		{name: "not json", body: `plain text`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &stubUseCase{}
			r := newTestServer(uc)

			w := postExecute(r, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if uc.calls != 0 {
				t.Error("use case invoked for an invalid request")
			}
		})
	}
}

func TestExecuteEndpointUseCaseError(t *testing.T) {
	uc := &stubUseCase{err: appointment.ErrInvalidPatientID}
	r := newTestServer(uc)

	w := postExecute(r, `{"messages": "check availability", "id_number": 1000082}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "7 or 8 digit") {
		t.Errorf("body = %s", w.Body.String())
	}
}
