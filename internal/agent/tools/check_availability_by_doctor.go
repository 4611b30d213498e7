package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/agent"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
	pkgLog "github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
)

type CheckAvailabilityByDoctorTool struct {
	uc appointment.UseCase
	l  pkgLog.Logger
}

func NewCheckAvailabilityByDoctorTool(uc appointment.UseCase, l pkgLog.Logger) *CheckAvailabilityByDoctorTool {
	return &CheckAvailabilityByDoctorTool{
		uc: uc,
		l:  l,
	}
}

func (t *CheckAvailabilityByDoctorTool) Name() string {
	return "check_availability_by_doctor"
}

func (t *CheckAvailabilityByDoctorTool) Description() string {
	return "Check the schedule for a specific doctor's open appointment slots on a given date. " +
		"Valid doctor names: " + strings.Join(appointment.DoctorNames, ", ") + "."
}

func (t *CheckAvailabilityByDoctorTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"desired_date": map[string]interface{}{
				"type":        "string",
				"description": "Date in format DD-MM-YYYY (e.g., 08-08-2024)",
			},
			"doctor_name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the doctor (lowercase with spaces, e.g., \"emily johnson\")",
			},
		},
		"required": []string{"desired_date", "doctor_name"},
	}
}

type CheckAvailabilityByDoctorInput struct {
	DesiredDate string `json:"desired_date"`
	DoctorName  string `json:"doctor_name"`
}

type CheckAvailabilityByDoctorOutput struct {
	DoctorName     string   `json:"doctor_name"`
	Date           string   `json:"date"`
	AvailableTimes []string `json:"available_times"`
	Summary        string   `json:"summary"`
}

func (t *CheckAvailabilityByDoctorTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	var params CheckAvailabilityByDoctorInput
	if err := json.Unmarshal(inputBytes, &params); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	t.l.Infof(ctx, "check_availability_by_doctor: doctor=%s date=%s", params.DoctorName, params.DesiredDate)

	out, err := t.uc.CheckByDoctor(ctx, appointment.CheckByDoctorInput{
		Date:       params.DesiredDate,
		DoctorName: params.DoctorName,
	})
	switch {
	case err == nil:
	case err == appointment.ErrInvalidDoctorName:
		return CheckAvailabilityByDoctorOutput{
			DoctorName: params.DoctorName,
			Date:       params.DesiredDate,
			Summary: fmt.Sprintf("Invalid doctor name: '%s'. Valid doctors are: %s",
				strings.ToLower(strings.TrimSpace(params.DoctorName)),
				strings.Join(appointment.DoctorNames, ", ")),
		}, nil
	case err == appointment.ErrInvalidDate:
		return CheckAvailabilityByDoctorOutput{
			DoctorName: params.DoctorName,
			Date:       params.DesiredDate,
			Summary: fmt.Sprintf("Invalid date format: '%s'. Please use DD-MM-YYYY format (e.g., 08-08-2024)",
				params.DesiredDate),
		}, nil
	default:
		t.l.Errorf(ctx, "check_availability_by_doctor: %v", err)
		return nil, err
	}

	title := appointment.TitleCase(out.DoctorName)
	var summary string
	switch {
	case len(out.AvailableTimes) > 0:
		summary = fmt.Sprintf("Availability for Dr. %s on %s:\nAvailable slots: %s",
			title, out.Date, strings.Join(out.AvailableTimes, ", "))
	case out.SlotsExist:
		summary = fmt.Sprintf("Dr. %s has no available slots on %s. All slots are booked.", title, out.Date)
	default:
		summary = fmt.Sprintf("Dr. %s is not available on %s.", title, out.Date)
	}

	return CheckAvailabilityByDoctorOutput{
		DoctorName:     out.DoctorName,
		Date:           out.Date,
		AvailableTimes: out.AvailableTimes,
		Summary:        summary,
	}, nil
}

// Verify interface compliance
var _ agent.Tool = (*CheckAvailabilityByDoctorTool)(nil)
