package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cchtnn/doctor-appointment-multiagent/config"
	_ "github.com/cchtnn/doctor-appointment-multiagent/docs" // Swagger docs
	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment/repository/csvstore"
	appointmentUC "github.com/cchtnn/doctor-appointment-multiagent/internal/appointment/usecase"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/booking"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/httpserver"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/information"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/middleware"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/supervisor"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/workflow"
	"github.com/cchtnn/doctor-appointment-multiagent/pkg/llmprovider"
	"github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
)

// @title       Doctor Appointment Multi-Agent API
// @description LLM-supervised multi-agent system for checking, booking, cancelling, and rescheduling doctor appointments.
// @version     1
// @host        localhost:8002
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Doctor Appointment Multi-Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Slot store: %s", cfg.Store.Path)

	// 3. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)
	logger.Infof(ctx, "LLM providers initialized: %d in chain", len(providers))

	// 4. Appointment domain
	slotRepo := csvstore.New(logger, cfg.Store.Path)
	apptUC := appointmentUC.New(logger, slotRepo)

	// 5. Agents and supervisor
	infoHandler := information.New(llm, apptUC, logger)
	bookingHandler := booking.New(llm, apptUC, logger)
	router := supervisor.New(llm, logger)

	// 6. Workflow use case
	workflowUC := workflow.New(logger, router, infoHandler, bookingHandler)

	// 7. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		WorkflowUC:  workflowUC,
		Middleware:  mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// parseDuration parses cfg duration strings like "1s", falling back when unset or invalid.
func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
