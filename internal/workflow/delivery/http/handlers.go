package http

import (
	"github.com/gin-gonic/gin"

	"github.com/cchtnn/doctor-appointment-multiagent/pkg/response"
)

// Execute godoc
// @Summary     Run a patient query through the appointment agents
// @Description Routes the free-text query between the availability and booking agents and returns the resulting assistant messages.
// @Tags        Workflow
// @Accept      json
// @Produce     json
// @Param       body body executeReq true "Query and patient identification number"
// @Success     200 {object} executeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /execute [POST]
func (h *handler) Execute(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExecuteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Execute(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Execute: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExecuteResp(output))
}
