package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/middleware"
	workflowHTTP "github.com/cchtnn/doctor-appointment-multiagent/internal/workflow/delivery/http"
)

// setupWorkflowDomain registers the conversational workflow routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(rg.Group("/myresource"), h, mw)
func (srv HTTPServer) setupWorkflowDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. HTTP Handler
	h := workflowHTTP.New(srv.l, srv.workflowUC)

	// 2. Routes: registers POST /execute
	workflowHTTP.RegisterRoutes(rg, h, mw)

	srv.l.Infof(ctx, "Workflow domain registered")
	return nil
}
