package workflow

import (
	"github.com/cchtnn/doctor-appointment-multiagent/internal/supervisor"
	pkgLog "github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	router      supervisor.Router
	information Handler
	booking     Handler
}

var _ UseCase = (*implUseCase)(nil)

func New(l pkgLog.Logger, router supervisor.Router, information, booking Handler) UseCase {
	return &implUseCase{
		l:           l,
		router:      router,
		information: information,
		booking:     booking,
	}
}
