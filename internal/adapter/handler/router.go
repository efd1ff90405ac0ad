package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	analyticsHandler *AnalyticsController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, analyticsHandler *AnalyticsController) *Router {
	return &Router{
		cfg:              cfg,
		analyticsHandler: analyticsHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAnalyticsRoutes(v1)
}

// setupAnalyticsRoutes configures analytics routes
func (rt *Router) setupAnalyticsRoutes(g *echo.Group) {
	analyticsGroup := g.Group("/analytics")

	if rt.analyticsHandler != nil {
		analyticsGroup.POST("/meetings/:id/analyze", rt.analyticsHandler.AnalyzeMeeting)
		analyticsGroup.POST("/meetings/:id/jobs", rt.analyticsHandler.EnqueueAnalysis)
		analyticsGroup.GET("/meetings/:id", rt.analyticsHandler.GetAnalytics)
		analyticsGroup.GET("/jobs/:job_id", rt.analyticsHandler.GetJob)
	} else {
		analyticsGroup.POST("/meetings/:id/analyze", rt.notImplemented)
		analyticsGroup.POST("/meetings/:id/jobs", rt.notImplemented)
		analyticsGroup.GET("/meetings/:id", rt.notImplemented)
		analyticsGroup.GET("/jobs/:job_id", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "unknown"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
	})
}
