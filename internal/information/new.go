package information

import (
	"github.com/cchtnn/doctor-appointment-multiagent/internal/agent"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/agent/orchestrator"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/agent/tools"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
	"github.com/cchtnn/doctor-appointment-multiagent/pkg/llmprovider"
	pkgLog "github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
)

// Handler answers availability questions. It can only reach the two query
// tools, so it can never mutate the slot store.
type Handler struct {
	orc      *orchestrator.Orchestrator
	byDoctor *tools.CheckAvailabilityByDoctorTool
	bySpec   *tools.CheckAvailabilityBySpecializationTool
	l        pkgLog.Logger
}

func New(llm *llmprovider.Manager, uc appointment.UseCase, l pkgLog.Logger) *Handler {
	byDoctor := tools.NewCheckAvailabilityByDoctorTool(uc, l)
	bySpec := tools.NewCheckAvailabilityBySpecializationTool(uc, l)

	registry := agent.NewToolRegistry()
	registry.Register(byDoctor)
	registry.Register(bySpec)

	return &Handler{
		orc:      orchestrator.New(llm, registry, l),
		byDoctor: byDoctor,
		bySpec:   bySpec,
		l:        l,
	}
}
