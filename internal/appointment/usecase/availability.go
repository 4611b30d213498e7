package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
)

func (uc implUseCase) CheckByDoctor(ctx context.Context, in appointment.CheckByDoctorInput) (appointment.CheckByDoctorOutput, error) {
	if err := appointment.ValidateDate(in.Date); err != nil {
		return appointment.CheckByDoctorOutput{}, err
	}
	if err := appointment.ValidateDoctorName(in.DoctorName); err != nil {
		return appointment.CheckByDoctorOutput{}, err
	}

	slots, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "appointment.usecase.CheckByDoctor: load slots: %v", err)
		return appointment.CheckByDoctorOutput{}, err
	}

	doctor := strings.ToLower(strings.TrimSpace(in.DoctorName))
	out := appointment.CheckByDoctorOutput{
		DoctorName: doctor,
		Date:       in.Date,
	}
	for _, slot := range slots {
		if slot.DoctorName != doctor || slot.Date() != in.Date {
			continue
		}
		out.SlotsExist = true
		if slot.IsAvailable {
			out.AvailableTimes = append(out.AvailableTimes, slot.Time())
		}
	}
	sort.Strings(out.AvailableTimes)
	return out, nil
}

func (uc implUseCase) CheckBySpecialization(ctx context.Context, in appointment.CheckBySpecializationInput) (appointment.CheckBySpecializationOutput, error) {
	if err := appointment.ValidateDate(in.Date); err != nil {
		return appointment.CheckBySpecializationOutput{}, err
	}
	if err := appointment.ValidateSpecialization(in.Specialization); err != nil {
		return appointment.CheckBySpecializationOutput{}, err
	}

	slots, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "appointment.usecase.CheckBySpecialization: load slots: %v", err)
		return appointment.CheckBySpecializationOutput{}, err
	}

	spec := strings.ToLower(strings.TrimSpace(in.Specialization))
	out := appointment.CheckBySpecializationOutput{
		Specialization: spec,
		Date:           in.Date,
	}

	byDoctor := make(map[string][]string)
	for _, slot := range slots {
		if slot.Specialization != spec || slot.Date() != in.Date {
			continue
		}
		out.SlotsExist = true
		if slot.IsAvailable {
			byDoctor[slot.DoctorName] = append(byDoctor[slot.DoctorName], slot.Time())
		}
	}

	doctors := make([]string, 0, len(byDoctor))
	for name := range byDoctor {
		doctors = append(doctors, name)
	}
	sort.Strings(doctors)
	for _, name := range doctors {
		times := byDoctor[name]
		sort.Strings(times)
		out.Doctors = append(out.Doctors, appointment.DoctorAvailability{
			DoctorName: name,
			Times:      times,
		})
	}
	return out, nil
}
