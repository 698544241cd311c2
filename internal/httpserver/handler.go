package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	careHTTP "plant-care-management/internal/care/delivery/http"
	"plant-care-management/internal/model"
	suggestionHTTP "plant-care-management/internal/suggestion/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RateLimit())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	srv.setupCareDomain(ctx, api)
	srv.setupSuggestionDomain(ctx, api)

	return nil
}

// setupCareDomain registers the dashboard and care event routes.
func (srv HTTPServer) setupCareDomain(ctx context.Context, api *gin.RouterGroup) {
	h := careHTTP.New(srv.l, srv.careUC)
	careHTTP.RegisterRoutes(api, h, srv.middleware)
	srv.l.Infof(ctx, "Care domain registered")
}

// setupSuggestionDomain registers the schedule suggestion routes.
func (srv HTTPServer) setupSuggestionDomain(ctx context.Context, api *gin.RouterGroup) {
	h := suggestionHTTP.New(srv.l, srv.suggestionUC)
	suggestionHTTP.RegisterRoutes(api, h, srv.middleware)
	srv.l.Infof(ctx, "Suggestion domain registered")
}
