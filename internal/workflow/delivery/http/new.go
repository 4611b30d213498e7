package http

import (
	"github.com/gin-gonic/gin"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/workflow"
	"github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
)

// Handler is the public interface for the workflow HTTP delivery layer.
type Handler interface {
	Execute(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc workflow.UseCase
}

// New creates a new HTTP handler for the workflow domain.
func New(l log.Logger, uc workflow.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
