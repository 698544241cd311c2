package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"plant-care-management/internal/care"
	"plant-care-management/internal/middleware"
	"plant-care-management/internal/suggestion"
	"plant-care-management/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Request handling
	middleware middleware.Middleware

	// Domains
	careUC       care.UseCase
	suggestionUC suggestion.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	CareUseCase       care.UseCase
	SuggestionUseCase suggestion.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.Default(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		middleware:   cfg.Middleware,
		careUC:       cfg.CareUseCase,
		suggestionUC: cfg.SuggestionUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.careUC == nil {
		return errors.New("care usecase is required")
	}
	if srv.suggestionUC == nil {
		return errors.New("suggestion usecase is required")
	}
	return nil
}
