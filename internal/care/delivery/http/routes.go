package http

import (
	"github.com/gin-gonic/gin"

	"plant-care-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/dashboard", mw.Scope(), h.Dashboard)

	plants := rg.Group("/plants")
	{
		plants.POST("/:id/care-events", mw.Scope(), h.LogCareEvent)
	}
}
