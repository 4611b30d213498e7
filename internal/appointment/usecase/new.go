package usecase

import (
	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment/repository"
	pkgLog "github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.SlotRepository
}

var _ appointment.UseCase = (*implUseCase)(nil)

func New(l pkgLog.Logger, repo repository.SlotRepository) appointment.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
