package http

import (
	"github.com/gin-gonic/gin"

	"plant-care-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	suggestions := rg.Group("/suggestions")
	{
		suggestions.GET("", mw.Scope(), h.List)
		suggestions.POST("/refresh", mw.Scope(), h.Refresh)
		suggestions.POST("/:id/accept", mw.Scope(), h.Accept)
		suggestions.POST("/:id/dismiss", mw.Scope(), h.Dismiss)
	}
}
