package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/agent"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
	pkgLog "github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
)

type RescheduleAppointmentTool struct {
	uc appointment.UseCase
	l  pkgLog.Logger
}

func NewRescheduleAppointmentTool(uc appointment.UseCase, l pkgLog.Logger) *RescheduleAppointmentTool {
	return &RescheduleAppointmentTool{
		uc: uc,
		l:  l,
	}
}

func (t *RescheduleAppointmentTool) Name() string {
	return "reschedule_appointment"
}

func (t *RescheduleAppointmentTool) Description() string {
	return "Move an existing appointment to a new time slot with the same doctor."
}

func (t *RescheduleAppointmentTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"old_date": map[string]interface{}{
				"type":        "string",
				"description": "Old datetime in format DD-MM-YYYY HH:MM (e.g., 08-08-2024 10:30)",
			},
			"new_date": map[string]interface{}{
				"type":        "string",
				"description": "New datetime in format DD-MM-YYYY HH:MM (e.g., 09-08-2024 14:00)",
			},
			"id_number": map[string]interface{}{
				"type":        "integer",
				"description": "Patient identification number (7 or 8 digits)",
			},
			"doctor_name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the doctor",
				"enum":        appointment.DoctorNames,
			},
		},
		"required": []string{"old_date", "new_date", "id_number", "doctor_name"},
	}
}

type RescheduleAppointmentInput struct {
	OldDate    string `json:"old_date"`
	NewDate    string `json:"new_date"`
	IDNumber   int    `json:"id_number"`
	DoctorName string `json:"doctor_name"`
}

type RescheduleAppointmentOutput struct {
	Rescheduled bool   `json:"rescheduled"`
	Summary     string `json:"summary"`
}

func (t *RescheduleAppointmentTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	var params RescheduleAppointmentInput
	if err := json.Unmarshal(inputBytes, &params); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	t.l.Infof(ctx, "reschedule_appointment: doctor=%s old=%s new=%s patient=%d",
		params.DoctorName, params.OldDate, params.NewDate, params.IDNumber)

	err = t.uc.Reschedule(ctx, appointment.RescheduleInput{
		OldDateTime: params.OldDate,
		NewDateTime: params.NewDate,
		PatientID:   params.IDNumber,
		DoctorName:  params.DoctorName,
	})
	title := appointment.TitleCase(params.DoctorName)
	switch {
	case err == nil:
		return RescheduleAppointmentOutput{
			Rescheduled: true,
			Summary: fmt.Sprintf("✓ Appointment successfully rescheduled from %s to %s with Dr. %s",
				params.OldDate, params.NewDate, title),
		}, nil
	case err == appointment.ErrNewSlotUnavailable:
		return RescheduleAppointmentOutput{
			Summary: fmt.Sprintf("Dr. %s is not available at %s. Please choose another time slot.",
				title, params.NewDate),
		}, nil
	case err == appointment.ErrBookingNotFound:
		return RescheduleAppointmentOutput{
			Summary: fmt.Sprintf("No appointment found for patient ID %d with Dr. %s on %s",
				params.IDNumber, title, params.OldDate),
		}, nil
	case err == appointment.ErrSlotNotFound:
		return RescheduleAppointmentOutput{
			Summary: fmt.Sprintf("No appointment slot exists for Dr. %s at %s. Please check availability first.",
				title, params.NewDate),
		}, nil
	case err == appointment.ErrSlotAlreadyBooked:
		return RescheduleAppointmentOutput{
			Summary: fmt.Sprintf("The slot at %s with Dr. %s is already booked.", params.NewDate, title),
		}, nil
	case err == appointment.ErrInvalidDateTime,
		err == appointment.ErrInvalidPatientID,
		err == appointment.ErrInvalidDoctorName:
		return RescheduleAppointmentOutput{
			Summary: fmt.Sprintf("Invalid input: %v", err),
		}, nil
	default:
		t.l.Errorf(ctx, "reschedule_appointment: %v", err)
		return nil, err
	}
}

// Verify interface compliance
var _ agent.Tool = (*RescheduleAppointmentTool)(nil)
