package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/agent"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
	pkgLog "github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
)

type CancelAppointmentTool struct {
	uc appointment.UseCase
	l  pkgLog.Logger
}

func NewCancelAppointmentTool(uc appointment.UseCase, l pkgLog.Logger) *CancelAppointmentTool {
	return &CancelAppointmentTool{
		uc: uc,
		l:  l,
	}
}

func (t *CancelAppointmentTool) Name() string {
	return "cancel_appointment"
}

func (t *CancelAppointmentTool) Description() string {
	return "Cancel an existing appointment held by the patient."
}

func (t *CancelAppointmentTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"date": map[string]interface{}{
				"type":        "string",
				"description": "DateTime in format DD-MM-YYYY HH:MM (e.g., 08-08-2024 10:30)",
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
		"required": []string{"date", "id_number", "doctor_name"},
	}
}

type CancelAppointmentInput struct {
	Date       string `json:"date"`
	IDNumber   int    `json:"id_number"`
	DoctorName string `json:"doctor_name"`
}

type CancelAppointmentOutput struct {
	Cancelled bool   `json:"cancelled"`
	Summary   string `json:"summary"`
}

func (t *CancelAppointmentTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	var params CancelAppointmentInput
	if err := json.Unmarshal(inputBytes, &params); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	t.l.Infof(ctx, "cancel_appointment: doctor=%s datetime=%s patient=%d",
		params.DoctorName, params.Date, params.IDNumber)

	err = t.uc.Cancel(ctx, appointment.CancelInput{
		DateTime:   params.Date,
		PatientID:  params.IDNumber,
		DoctorName: params.DoctorName,
	})
	title := appointment.TitleCase(params.DoctorName)
	switch {
	case err == nil:
		return CancelAppointmentOutput{
			Cancelled: true,
			Summary: fmt.Sprintf("✓ Appointment successfully cancelled for patient ID %d with Dr. %s on %s",
				params.IDNumber, title, params.Date),
		}, nil
	case err == appointment.ErrBookingNotFound:
		return CancelAppointmentOutput{
			Summary: fmt.Sprintf("No appointment found for patient ID %d with Dr. %s on %s",
				params.IDNumber, title, params.Date),
		}, nil
	case err == appointment.ErrInvalidDateTime,
		err == appointment.ErrInvalidPatientID,
		err == appointment.ErrInvalidDoctorName:
		return CancelAppointmentOutput{
			Summary: fmt.Sprintf("Invalid input: %v", err),
		}, nil
	default:
		t.l.Errorf(ctx, "cancel_appointment: %v", err)
		return nil, err
	}
}

// Verify interface compliance
var _ agent.Tool = (*CancelAppointmentTool)(nil)
