package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/retrosynth/internal/platform/logging"
	"github.com/turtacn/retrosynth/internal/platform/metrics"
)

// RouterConfig aggregates every handler and cross-cutting dependency needed
// to construct the complete HTTP route tree.
type RouterConfig struct {
	RoutesHandler    *RoutesHandler
	TemplatesHandler *TemplatesHandler
	HealthHandler    *HealthHandler
	Metrics          metrics.MetricsCollector
	AppMetrics       *metrics.AppMetrics
	Logger           logging.Logger
}

// NewRouter constructs the complete HTTP route tree: global middleware
// (recovery, request logging, metrics), the public health and metrics
// endpoints, and the versioned routes API.
func NewRouter(cfg RouterConfig) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(requestLoggingMiddleware(cfg.Logger))
	if cfg.AppMetrics != nil {
		r.Use(metricsMiddleware(cfg.AppMetrics))
	}

	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Liveness)
		r.GET("/readyz", cfg.HealthHandler.Liveness)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	v1 := r.Group("/api/v1")
	registerRouteEndpoints(v1, cfg.RoutesHandler)
	registerTemplateEndpoints(v1, cfg.TemplatesHandler)

	return r
}

// registerRouteEndpoints mounts the route-building endpoint under
// /api/v1/routes.
func registerRouteEndpoints(r *gin.RouterGroup, h *RoutesHandler) {
	if h == nil {
		return
	}
	r.POST("/routes", h.PostRoutes)
}

// registerTemplateEndpoints mounts the paginated template-catalog listing
// endpoint under /api/v1/templates.
func registerTemplateEndpoints(r *gin.RouterGroup, h *TemplatesHandler) {
	if h == nil {
		return
	}
	r.GET("/templates", h.GetTemplates)
}

// requestLoggingMiddleware logs one line per completed request at Info
// level, mirroring the teacher's structured request logging.
func requestLoggingMiddleware(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()
		logger.Info("http_request",
			logging.String("method", c.Request.Method),
			logging.String("path", path),
			logging.Int("status", c.Writer.Status()),
			logging.Duration("duration", time.Since(start)),
		)
	}
}

// metricsMiddleware records the D6 HTTP request counters/histograms for
// every served request.
func metricsMiddleware(m *metrics.AppMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		c.Next()
		metrics.RecordHTTPRequest(m, c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

//Personal.AI order the ending
