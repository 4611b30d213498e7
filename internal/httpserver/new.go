package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/middleware"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/workflow"
	"github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Workflow domain
	workflowUC workflow.UseCase
	mw         middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Workflow domain
	WorkflowUC workflow.UseCase
	Middleware middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		workflowUC:  cfg.WorkflowUC,
		mw:          cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.workflowUC == nil {
		return errors.New("workflow use case is required")
	}
	return nil
}
