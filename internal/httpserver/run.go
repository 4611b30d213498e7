package httpserver

import (
	"context"
	"fmt"
)

// Run maps all handlers and starts serving on the configured port.
// It blocks until the listener fails.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	srv.l.Infof(context.Background(), "Listening on :%d", srv.port)
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
