package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/agent/tools"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/conversation"
)

// Handle runs the booking dialogue and appends exactly one assistant turn
// with origin booking. Booking parameters come from the most recent
// information turn; when the dialogue fails or returns unusable output, a
// complete extraction is booked directly, an incomplete one is reported as
// missing fields. Nothing escapes this boundary.
func (h *Handler) Handle(ctx context.Context, state *conversation.State) {
	availabilityInfo := ""
	if turn, ok := state.LastByOrigin(conversation.OriginInformation); ok {
		availabilityInfo = turn.Content
	}
	ext := Extract(availabilityInfo)
	h.l.Infof(ctx, "%s: extracted doctor=%q date=%q time=%q",
		LogPrefixHandle, ext.Doctor, ext.Date, ext.Time)

	systemPrompt := fmt.Sprintf(SystemPromptBooking,
		state.SubjectID, availabilityInfo,
		ext.Doctor, ext.Date, ext.Time,
		ext.Date, ext.Time, state.SubjectID, ext.Doctor)
	query := fmt.Sprintf(PromptBookingQuery, state.SubjectID, ext.Doctor, ext.Date, ext.Time)

	answer, err := h.orc.Run(ctx, systemPrompt, query)
	if err != nil {
		h.l.Warnf(ctx, "%s: dialogue failed: %v", LogPrefixHandle, err)
		answer = ""
	}

	if strings.TrimSpace(answer) == "" || strings.Contains(strings.ToLower(answer), ErrIndicator) {
		answer = h.direct(ctx, state.SubjectID, ext)
	}

	state.AppendAssistant(conversation.OriginBooking, answer)
}

// direct performs the set mutation without the model, using only the
// extracted parameters.
func (h *Handler) direct(ctx context.Context, subjectID int, ext Extraction) string {
	if !ext.Complete() {
		return fmt.Sprintf(MsgMissingDetailsFormat, ext.Missing())
	}

	res, err := h.set.Execute(ctx, map[string]interface{}{
		"desired_date": ext.Date + " " + ext.Time,
		"id_number":    subjectID,
		"doctor_name":  ext.Doctor,
	})
	if err != nil {
		h.l.Errorf(ctx, "%s: direct set failed: %v", LogPrefixHandle, err)
		return fmt.Sprintf(MsgBookingFailedFormat, err)
	}
	out, ok := res.(tools.SetAppointmentOutput)
	if !ok {
		return fmt.Sprintf(MsgBookingFailedFormat, "unexpected tool result")
	}
	return out.Summary
}
