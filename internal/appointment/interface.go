package appointment

import "context"

// UseCase exposes every availability query and booking mutation on the
// slot store. Inputs are validated before the store is touched.
type UseCase interface {
	CheckByDoctor(ctx context.Context, in CheckByDoctorInput) (CheckByDoctorOutput, error)
	CheckBySpecialization(ctx context.Context, in CheckBySpecializationInput) (CheckBySpecializationOutput, error)
	Set(ctx context.Context, in SetInput) error
	Cancel(ctx context.Context, in CancelInput) error
	Reschedule(ctx context.Context, in RescheduleInput) error
}
