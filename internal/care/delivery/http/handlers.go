package http

import (
	"github.com/gin-gonic/gin"

	"plant-care-management/internal/middleware"
	"plant-care-management/pkg/response"
)

// Dashboard godoc
// @Summary     Care dashboard
// @Description Classifies every tracked care task, selects the tasks coming up within the horizon, and attaches pending schedule suggestions.
// @Tags        Care
// @Accept      json
// @Produce     json
// @Param       at           query string false "Evaluation instant (RFC3339, default: now)"
// @Param       horizon_days query int    false "Upcoming window in days (default: 7)"
// @Param       limit        query int    false "Max upcoming entries (default: 6)"
// @Success     200 {object} dashboardResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dashboard [GET]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDashboardReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Dashboard(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Dashboard: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDashboardResp(output))
}

// LogCareEvent godoc
// @Summary     Log a care event
// @Description Records that a plant was watered or fertilized and returns the recomputed task for the pair.
// @Tags        Care
// @Accept      json
// @Produce     json
// @Param       id   path string          true "Plant ID"
// @Param       body body logCareEventReq true "Care event data"
// @Success     200 {object} logCareEventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Plant Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plants/{id}/care-events [POST]
func (h *handler) LogCareEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLogCareEventReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.LogCareEvent(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.LogCareEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLogCareEventResp(output))
}
