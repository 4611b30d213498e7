package usecase

import (
	"context"
	"strings"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
)

func (uc implUseCase) Set(ctx context.Context, in appointment.SetInput) error {
	if err := appointment.ValidateDateTime(in.DateTime); err != nil {
		return err
	}
	if err := appointment.ValidatePatientID(in.PatientID); err != nil {
		return err
	}
	if err := appointment.ValidateDoctorName(in.DoctorName); err != nil {
		return err
	}

	doctor := strings.ToLower(strings.TrimSpace(in.DoctorName))
	err := uc.repo.Update(ctx, func(slots []appointment.Slot) ([]appointment.Slot, error) {
		return bookSlot(slots, doctor, in.DateTime, in.PatientID)
	})
	if err != nil {
		uc.l.Warnf(ctx, "appointment.usecase.Set: doctor=%s datetime=%s: %v", doctor, in.DateTime, err)
	}
	return err
}

func (uc implUseCase) Cancel(ctx context.Context, in appointment.CancelInput) error {
	if err := appointment.ValidateDateTime(in.DateTime); err != nil {
		return err
	}
	if err := appointment.ValidatePatientID(in.PatientID); err != nil {
		return err
	}
	if err := appointment.ValidateDoctorName(in.DoctorName); err != nil {
		return err
	}

	doctor := strings.ToLower(strings.TrimSpace(in.DoctorName))
	err := uc.repo.Update(ctx, func(slots []appointment.Slot) ([]appointment.Slot, error) {
		return releaseSlot(slots, doctor, in.DateTime, in.PatientID)
	})
	if err != nil {
		uc.l.Warnf(ctx, "appointment.usecase.Cancel: doctor=%s datetime=%s: %v", doctor, in.DateTime, err)
	}
	return err
}

// Reschedule checks the target slot before touching the existing booking, so
// a patient never loses their old slot to an impossible move. The cancel and
// re-book run inside one store update.
func (uc implUseCase) Reschedule(ctx context.Context, in appointment.RescheduleInput) error {
	if err := appointment.ValidateDateTime(in.OldDateTime); err != nil {
		return err
	}
	if err := appointment.ValidateDateTime(in.NewDateTime); err != nil {
		return err
	}
	if err := appointment.ValidatePatientID(in.PatientID); err != nil {
		return err
	}
	if err := appointment.ValidateDoctorName(in.DoctorName); err != nil {
		return err
	}

	doctor := strings.ToLower(strings.TrimSpace(in.DoctorName))
	err := uc.repo.Update(ctx, func(slots []appointment.Slot) ([]appointment.Slot, error) {
		if !slotOpen(slots, doctor, in.NewDateTime) {
			return nil, appointment.ErrNewSlotUnavailable
		}
		slots, err := releaseSlot(slots, doctor, in.OldDateTime, in.PatientID)
		if err != nil {
			return nil, err
		}
		return bookSlot(slots, doctor, in.NewDateTime, in.PatientID)
	})
	if err != nil {
		uc.l.Warnf(ctx, "appointment.usecase.Reschedule: doctor=%s old=%s new=%s: %v",
			doctor, in.OldDateTime, in.NewDateTime, err)
	}
	return err
}

func slotOpen(slots []appointment.Slot, doctor, dateTime string) bool {
	for _, slot := range slots {
		if slot.DoctorName == doctor && slot.DateSlot == dateTime && slot.IsAvailable {
			return true
		}
	}
	return false
}

func bookSlot(slots []appointment.Slot, doctor, dateTime string, patientID int) ([]appointment.Slot, error) {
	for i, slot := range slots {
		if slot.DoctorName != doctor || slot.DateSlot != dateTime {
			continue
		}
		if !slot.IsAvailable {
			return nil, appointment.ErrSlotAlreadyBooked
		}
		id := patientID
		slots[i].IsAvailable = false
		slots[i].PatientID = &id
		return slots, nil
	}
	return nil, appointment.ErrSlotNotFound
}

func releaseSlot(slots []appointment.Slot, doctor, dateTime string, patientID int) ([]appointment.Slot, error) {
	for i, slot := range slots {
		if slot.DoctorName != doctor || slot.DateSlot != dateTime {
			continue
		}
		if slot.PatientID == nil || *slot.PatientID != patientID {
			continue
		}
		slots[i].IsAvailable = true
		slots[i].PatientID = nil
		return slots, nil
	}
	return nil, appointment.ErrBookingNotFound
}
