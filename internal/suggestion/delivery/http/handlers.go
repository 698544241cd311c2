package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plant-care-management/internal/middleware"
	"plant-care-management/pkg/response"
)

// List godoc
// @Summary     List pending suggestions
// @Description Returns open schedule suggestions, newest first.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       limit query int false "Max suggestions (default: 5)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/suggestions [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListPending(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListPending: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Refresh godoc
// @Summary     Refresh suggestions
// @Description Re-analyzes care history and creates new pending suggestions where the observed rhythm differs from the configured interval.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       body body refreshReq false "Optional plant filter"
// @Success     200 {object} refreshResp
// @Failure     404 {object} response.Resp "Plant Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/suggestions/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRefreshReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Refresh(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Refresh: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRefreshResp(output))
}

// Accept godoc
// @Summary     Accept a suggestion
// @Description Resolves a pending suggestion and applies the proposed interval to the plant.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       id path string true "Suggestion ID"
// @Success     200 {object} acceptResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - already resolved"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/suggestions/{id}/accept [POST]
func (h *handler) Accept(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Accept(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Accept: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAcceptResp(output))
}

// Dismiss godoc
// @Summary     Dismiss a suggestion
// @Description Resolves a pending suggestion without applying it; the proposed value is not re-suggested during the cooldown window.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       id path string true "Suggestion ID"
// @Success     200 {object} dismissResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - already resolved"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/suggestions/{id}/dismiss [POST]
func (h *handler) Dismiss(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Dismiss(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Dismiss: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDismissResp(output))
}
