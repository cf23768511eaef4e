package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/news-aggregator/internal/config"
	sharedgin "github.com/jonesrussell/news-aggregator/pkg/gin"
	"github.com/jonesrussell/news-aggregator/pkg/logger"
)

// NewServer creates the HTTP server with standard middleware, health
// routes, and the aggregator's API routes.
func NewServer(handler *Handler, cfg *config.Config, log logger.Logger) *sharedgin.Server {
	serverCfg := &sharedgin.Config{
		Port:           cfg.Service.Port,
		Debug:          cfg.Service.Debug,
		ServiceName:    cfg.Service.Name,
		ServiceVersion: cfg.Service.Version,
		CORS: sharedgin.CORSConfig{
			Enabled:          true,
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   cfg.CORS.AllowedMethods,
			AllowedHeaders:   cfg.CORS.AllowedHeaders,
			AllowCredentials: cfg.CORS.AllowCredentials(),
			MaxAge:           time.Duration(cfg.CORS.MaxAge) * time.Second,
		},
	}

	return sharedgin.NewServer(serverCfg, log, func(router *gin.Engine) {
		SetupRoutes(router, handler)
	})
}
