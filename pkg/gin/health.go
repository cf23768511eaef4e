package gin

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// healthState tracks server start time for uptime reporting.
var healthState = struct {
	sync.Once
	startTime time.Time
}{}

func initStartTime() {
	healthState.Do(func() {
		healthState.startTime = time.Now()
	})
}

// RegisterHealthRoutes adds the root banner and health endpoints to a
// Gin router. Both respond to GET and HEAD so load balancers can probe
// them cheaply.
func RegisterHealthRoutes(router *gin.Engine, serviceName, version string) {
	initStartTime()

	rootHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"service": serviceName,
			"version": version,
		})
	}
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"status":  "healthy",
			"service": serviceName,
			"version": version,
			"uptime":  time.Since(healthState.startTime).Truncate(time.Second).String(),
		})
	}

	router.GET("/", rootHandler)
	router.HEAD("/", rootHandler)
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)
}
