package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures the service-specific routes. Health and root
// banner routes are registered by the shared server package.
func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/metrics", handler.Metrics())

	news := router.Group("/api/news")
	{
		news.GET("/search", handler.Search)
		news.GET("/latest", handler.Latest)
		news.GET("/trending", handler.Trending)
		news.GET("/categories", handler.Categories)
	}
}
