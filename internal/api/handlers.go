// Package api exposes the aggregation engine over HTTP.
package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/news-aggregator/internal/domain"
	"github.com/jonesrussell/news-aggregator/internal/engine"
	"github.com/jonesrussell/news-aggregator/internal/telemetry"
	"github.com/jonesrussell/news-aggregator/pkg/logger"
)

// Handler holds the HTTP request handlers.
type Handler struct {
	engine  *engine.Engine
	metrics *telemetry.Metrics
	logger  logger.Logger
}

// NewHandler creates a new handler instance.
func NewHandler(eng *engine.Engine, metrics *telemetry.Metrics, log logger.Logger) *Handler {
	return &Handler{
		engine:  eng,
		metrics: metrics,
		logger:  log,
	}
}

// Search handles GET /api/news/search.
func (h *Handler) Search(c *gin.Context) {
	req := domain.SearchRequest{
		Query:        c.Query("query"),
		Page:         intQuery(c, "page"),
		PerSiteLimit: intQuery(c, "per_site_limit"),
		Sources:      c.Query("sources"),
		Sort:         c.Query("sort"),
		DateFrom:     c.Query("date_from"),
		DateTo:       c.Query("date_to"),
	}

	if err := req.Validate(); err != nil {
		h.badRequest(c, err)
		return
	}

	result, err := h.engine.Search(c.Request.Context(), &req)
	if err != nil {
		h.internalError(c, "search", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Latest handles GET /api/news/latest.
func (h *Handler) Latest(c *gin.Context) {
	req := domain.LatestRequest{
		Category: c.Query("category"),
		Limit:    intQuery(c, "limit"),
		Source:   c.Query("source"),
	}

	if err := req.Validate(); err != nil {
		h.badRequest(c, err)
		return
	}

	result, err := h.engine.Latest(c.Request.Context(), &req)
	if err != nil {
		h.internalError(c, "latest", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Trending handles GET /api/news/trending.
func (h *Handler) Trending(c *gin.Context) {
	req := domain.TrendingRequest{
		Category: c.Query("category"),
		Limit:    intQuery(c, "limit"),
		Sources:  c.Query("sources"),
	}

	if err := req.Validate(); err != nil {
		h.badRequest(c, err)
		return
	}

	result, err := h.engine.Trending(c.Request.Context(), &req)
	if err != nil {
		h.internalError(c, "trending", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Categories handles GET /api/news/categories.
func (h *Handler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Categories())
}

// Metrics handles GET /metrics (Prometheus exposition).
func (h *Handler) Metrics() gin.HandlerFunc {
	return gin.WrapH(h.metrics.Handler())
}

// badRequest rejects the request before it reaches the engine.
func (h *Handler) badRequest(c *gin.Context, err error) {
	h.logger.Warn("invalid request",
		logger.String("path", c.Request.URL.Path),
		logger.Error(err),
	)
	c.JSON(http.StatusUnprocessableEntity, domain.ErrorResponse{
		Success: false,
		Detail:  err.Error(),
	})
}

// internalError reports an unexpected engine fault. Per-source adapter
// failures never end up here; those are absorbed by the engine.
func (h *Handler) internalError(c *gin.Context, operation string, err error) {
	h.logger.Error("orchestrator failed",
		logger.String("operation", operation),
		logger.Error(err),
	)
	c.JSON(http.StatusInternalServerError, domain.ErrorResponse{
		Success: false,
		Detail:  "internal error: " + err.Error(),
	})
}

// intQuery parses an integer query parameter; absent or malformed
// values come back as zero and fall to the request defaults, except
// that malformed non-empty values must not silently become defaults.
func intQuery(c *gin.Context, name string) int {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return v
}
