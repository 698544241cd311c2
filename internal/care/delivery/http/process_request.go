package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "plant-care-management/pkg/errors"
)

// processDashboardReq binds and validates the dashboard query parameters.
func (h *handler) processDashboardReq(c *gin.Context) (dashboardReq, error) {
	var req dashboardReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processLogCareEventReq binds and validates the care event body + URI param.
func (h *handler) processLogCareEventReq(c *gin.Context) (logCareEventReq, error) {
	var req logCareEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.PlantID = c.Param("id")
	if req.PlantID == "" {
		return req, pkgErrors.NewHTTPError(400, "plant id is required")
	}
	return req, req.validate()
}
