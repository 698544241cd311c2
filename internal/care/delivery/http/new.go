package http

import (
	"github.com/gin-gonic/gin"

	"plant-care-management/internal/care"
	"plant-care-management/pkg/log"
)

// Handler is the public interface for the care HTTP delivery layer.
type Handler interface {
	Dashboard(c *gin.Context)
	LogCareEvent(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc care.UseCase
}

// New creates a new HTTP handler for the care domain.
func New(l log.Logger, uc care.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
