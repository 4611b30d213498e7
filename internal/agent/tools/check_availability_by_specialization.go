package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/agent"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
	"github.com/cchtnn/doctor-appointment-multiagent/pkg/dateparse"
	pkgLog "github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
)

type CheckAvailabilityBySpecializationTool struct {
	uc appointment.UseCase
	l  pkgLog.Logger
}

func NewCheckAvailabilityBySpecializationTool(uc appointment.UseCase, l pkgLog.Logger) *CheckAvailabilityBySpecializationTool {
	return &CheckAvailabilityBySpecializationTool{
		uc: uc,
		l:  l,
	}
}

func (t *CheckAvailabilityBySpecializationTool) Name() string {
	return "check_availability_by_specialization"
}

func (t *CheckAvailabilityBySpecializationTool) Description() string {
	return "Check open appointment slots for every doctor of a given specialization on a date. " +
		"Returns all available doctors with their time slots for that specialization."
}

func (t *CheckAvailabilityBySpecializationTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"desired_date": map[string]interface{}{
				"type":        "string",
				"description": "Date in format DD-MM-YYYY (e.g., 08-08-2024)",
			},
			"specialization": map[string]interface{}{
				"type":        "string",
				"description": "Type of dental specialization",
				"enum":        appointment.Specializations,
			},
		},
		"required": []string{"desired_date", "specialization"},
	}
}

type CheckAvailabilityBySpecializationInput struct {
	DesiredDate    string `json:"desired_date"`
	Specialization string `json:"specialization"`
}

type DoctorSlots struct {
	DoctorName string   `json:"doctor_name"`
	Times      []string `json:"times"`
}

type CheckAvailabilityBySpecializationOutput struct {
	Specialization string        `json:"specialization"`
	Date           string        `json:"date"`
	Doctors        []DoctorSlots `json:"doctors"`
	Summary        string        `json:"summary"`
}

func (t *CheckAvailabilityBySpecializationTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	var params CheckAvailabilityBySpecializationInput
	if err := json.Unmarshal(inputBytes, &params); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	t.l.Infof(ctx, "check_availability_by_specialization: specialization=%s date=%s",
		params.Specialization, params.DesiredDate)

	out, err := t.uc.CheckBySpecialization(ctx, appointment.CheckBySpecializationInput{
		Date:           params.DesiredDate,
		Specialization: params.Specialization,
	})
	switch {
	case err == nil:
	case err == appointment.ErrInvalidSpecialization:
		return CheckAvailabilityBySpecializationOutput{
			Specialization: params.Specialization,
			Date:           params.DesiredDate,
			Summary: fmt.Sprintf("Invalid specialization: '%s'. Valid specializations are: %s",
				params.Specialization, strings.Join(appointment.Specializations, ", ")),
		}, nil
	case err == appointment.ErrInvalidDate:
		return CheckAvailabilityBySpecializationOutput{
			Specialization: params.Specialization,
			Date:           params.DesiredDate,
			Summary: fmt.Sprintf("Invalid date format: '%s'. Please use DD-MM-YYYY format (e.g., 08-08-2024)",
				params.DesiredDate),
		}, nil
	default:
		t.l.Errorf(ctx, "check_availability_by_specialization: %v", err)
		return nil, err
	}

	display := strings.ReplaceAll(out.Specialization, "_", " ")
	result := CheckAvailabilityBySpecializationOutput{
		Specialization: out.Specialization,
		Date:           out.Date,
	}

	switch {
	case len(out.Doctors) > 0:
		var b strings.Builder
		fmt.Fprintf(&b, "Available %s appointments on %s:\n\n", display, out.Date)
		for _, d := range out.Doctors {
			times := make([]string, 0, len(d.Times))
			for _, tm := range d.Times {
				times = append(times, dateparse.To12Hour(tm))
			}
			result.Doctors = append(result.Doctors, DoctorSlots{DoctorName: d.DoctorName, Times: times})
			fmt.Fprintf(&b, "Dr. %s:\n%s\n\n", appointment.TitleCase(d.DoctorName), strings.Join(times, ", "))
		}
		result.Summary = strings.TrimSpace(b.String())
	case out.SlotsExist:
		result.Summary = fmt.Sprintf("No available slots for %s on %s. All slots are booked.", display, out.Date)
	default:
		result.Summary = fmt.Sprintf("No %s appointments available on %s. Please try another date.", display, out.Date)
	}

	return result, nil
}

// Verify interface compliance
var _ agent.Tool = (*CheckAvailabilityBySpecializationTool)(nil)
