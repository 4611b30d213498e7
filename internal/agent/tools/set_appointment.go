package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/agent"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
	pkgLog "github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
)

type SetAppointmentTool struct {
	uc appointment.UseCase
	l  pkgLog.Logger
}

func NewSetAppointmentTool(uc appointment.UseCase, l pkgLog.Logger) *SetAppointmentTool {
	return &SetAppointmentTool{
		uc: uc,
		l:  l,
	}
}

func (t *SetAppointmentTool) Name() string {
	return "set_appointment"
}

func (t *SetAppointmentTool) Description() string {
	return "Book an appointment slot with a doctor. " +
		"IMPORTANT: Only use this tool AFTER confirming availability with the check_availability tools."
}

func (t *SetAppointmentTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"desired_date": map[string]interface{}{
				"type":        "string",
				"description": "DateTime in format DD-MM-YYYY HH:MM (e.g., 08-08-2024 20:00)",
			},
			"id_number": map[string]interface{}{
				"type":        "integer",
				"description": "Patient identification number (7 or 8 digits)",
			},
			"doctor_name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the doctor (must be exact match from the list)",
				"enum":        appointment.DoctorNames,
			},
		},
		"required": []string{"desired_date", "id_number", "doctor_name"},
	}
}

type SetAppointmentInput struct {
	DesiredDate string `json:"desired_date"`
	IDNumber    int    `json:"id_number"`
	DoctorName  string `json:"doctor_name"`
}

type SetAppointmentOutput struct {
	Booked  bool   `json:"booked"`
	Summary string `json:"summary"`
}

func (t *SetAppointmentTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	var params SetAppointmentInput
	if err := json.Unmarshal(inputBytes, &params); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	t.l.Infof(ctx, "set_appointment: doctor=%s datetime=%s patient=%d",
		params.DoctorName, params.DesiredDate, params.IDNumber)

	err = t.uc.Set(ctx, appointment.SetInput{
		DateTime:   params.DesiredDate,
		PatientID:  params.IDNumber,
		DoctorName: params.DoctorName,
	})
	title := appointment.TitleCase(params.DoctorName)
	switch {
	case err == nil:
		return SetAppointmentOutput{
			Booked: true,
			Summary: fmt.Sprintf("✓ Appointment successfully booked!\nDoctor: Dr. %s\nDate & Time: %s\nPatient ID: %d",
				title, params.DesiredDate, params.IDNumber),
		}, nil
	case err == appointment.ErrSlotNotFound:
		return SetAppointmentOutput{
			Summary: fmt.Sprintf("No appointment slot exists for Dr. %s at %s. Please check availability first.",
				title, params.DesiredDate),
		}, nil
	case err == appointment.ErrSlotAlreadyBooked:
		return SetAppointmentOutput{
			Summary: fmt.Sprintf("The slot at %s with Dr. %s is already booked.", params.DesiredDate, title),
		}, nil
	case err == appointment.ErrInvalidDateTime,
		err == appointment.ErrInvalidPatientID,
		err == appointment.ErrInvalidDoctorName:
		return SetAppointmentOutput{
			Summary: fmt.Sprintf("Invalid input: %v", err),
		}, nil
	default:
		t.l.Errorf(ctx, "set_appointment: %v", err)
		return nil, err
	}
}

// Verify interface compliance
var _ agent.Tool = (*SetAppointmentTool)(nil)
