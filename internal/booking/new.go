package booking

import (
	"github.com/cchtnn/doctor-appointment-multiagent/internal/agent"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/agent/orchestrator"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/agent/tools"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
	"github.com/cchtnn/doctor-appointment-multiagent/pkg/llmprovider"
	pkgLog "github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
)

// Handler performs booking mutations. It is the only component allowed to
// change the slot store, and it acts at most once per invocation.
type Handler struct {
	orc *orchestrator.Orchestrator
	set *tools.SetAppointmentTool
	l   pkgLog.Logger
}

func New(llm *llmprovider.Manager, uc appointment.UseCase, l pkgLog.Logger) *Handler {
	set := tools.NewSetAppointmentTool(uc, l)

	registry := agent.NewToolRegistry()
	registry.Register(set)
	registry.Register(tools.NewCancelAppointmentTool(uc, l))
	registry.Register(tools.NewRescheduleAppointmentTool(uc, l))

	return &Handler{
		orc: orchestrator.New(llm, registry, l),
		set: set,
		l:   l,
	}
}
