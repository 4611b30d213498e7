package http

import (
	"github.com/gin-gonic/gin"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
)

// processExecuteReq binds and validates the execute request body. The
// subject id shape is checked here so malformed requests never reach the
// routing loop.
func (h *handler) processExecuteReq(c *gin.Context) (executeReq, error) {
	var req executeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (r executeReq) validate() error {
	if err := appointment.ValidatePatientID(r.IDNumber); err != nil {
		return err
	}
	return nil
}
