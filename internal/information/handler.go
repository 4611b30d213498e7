package information

import (
	"context"
	"fmt"
	"strings"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/agent/tools"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/conversation"
	"github.com/cchtnn/doctor-appointment-multiagent/pkg/dateparse"
)

// Handle runs the availability dialogue and appends exactly one assistant
// turn with origin information. Failures never escape: the turn carries an
// apology or a deterministic-retry result instead.
func (h *Handler) Handle(ctx context.Context, state *conversation.State) {
	query := state.FirstUserMessage()

	answer, err := h.orc.Run(ctx, SystemPromptInformation, query)
	if err == nil && strings.TrimSpace(answer) != "" {
		state.AppendAssistant(conversation.OriginInformation, answer)
		return
	}
	if err != nil {
		h.l.Warnf(ctx, "%s: dialogue failed: %v", LogPrefixHandle, err)
	} else {
		h.l.Warnf(ctx, "%s: dialogue returned no text", LogPrefixHandle)
	}

	state.AppendAssistant(conversation.OriginInformation, h.retry(ctx, query))
}

// retry answers the query without the model: parse the date and the subject
// (doctor or specialization) straight out of the user's text and invoke the
// matching query tool once.
func (h *Handler) retry(ctx context.Context, query string) string {
	date, ok := dateparse.FindDate(query)
	if !ok {
		return MsgRetryApology + "\n\n" + MsgMissingDate
	}

	lower := strings.ToLower(query)

	if doctor, ok := findDoctor(lower); ok {
		res, err := h.byDoctor.Execute(ctx, map[string]interface{}{
			"desired_date": date,
			"doctor_name":  doctor,
		})
		if err != nil {
			h.l.Errorf(ctx, "%s: retry by doctor: %v", LogPrefixHandle, err)
			return fmt.Sprintf(MsgErrorFormat, err)
		}
		return summaryOf(res)
	}

	spec := findSpecialization(lower)
	res, err := h.bySpec.Execute(ctx, map[string]interface{}{
		"desired_date":   date,
		"specialization": spec,
	})
	if err != nil {
		h.l.Errorf(ctx, "%s: retry by specialization: %v", LogPrefixHandle, err)
		return fmt.Sprintf(MsgErrorFormat, err)
	}
	return summaryOf(res)
}

func findDoctor(lower string) (string, bool) {
	for _, name := range appointment.DoctorNames {
		if strings.Contains(lower, name) {
			return name, true
		}
	}
	return "", false
}

// findSpecialization matches a spoken specialization ("general dentist")
// against the enumerated values; general_dentist is the default when the
// text names none.
func findSpecialization(lower string) string {
	for _, spec := range appointment.Specializations {
		if strings.Contains(lower, strings.ReplaceAll(spec, "_", " ")) || strings.Contains(lower, spec) {
			return spec
		}
	}
	return "general_dentist"
}

func summaryOf(res interface{}) string {
	switch out := res.(type) {
	case tools.CheckAvailabilityByDoctorOutput:
		return out.Summary
	case tools.CheckAvailabilityBySpecializationOutput:
		return out.Summary
	default:
		return fmt.Sprintf("%v", res)
	}
}
