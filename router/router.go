package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rrinconline/sticker-lab-backend/config"
	"github.com/rrinconline/sticker-lab-backend/handlers"
	"github.com/rrinconline/sticker-lab-backend/middleware"
)

// Dependencies holds everything needed to set up routes. Metrics defaults
// to the Prometheus default gatherer.
type Dependencies struct {
	Config            *config.Config
	HealthHandler     *handlers.HealthHandler
	SubmissionHandler *handlers.SubmissionHandler
	Metrics           http.Handler
}

// SetupRouter configures and returns the gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()

	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config))
	r.Use(middleware.ErrorHandler())

	metrics := deps.Metrics
	if metrics == nil {
		metrics = promhttp.Handler()
	}

	ops := r.Group("")
	ops.Use(middleware.CORSMiddleware(&deps.Config.Server))
	{
		ops.GET("/health", deps.HealthHandler.ReadinessCheck)
		ops.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
		ops.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
		ops.GET("/metrics", gin.WrapH(metrics))
	}

	api := r.Group("/api")
	{
		api.POST("/contact", deps.SubmissionHandler.Contact)
		api.OPTIONS("/contact", deps.SubmissionHandler.Contact)
		api.POST("/orders", deps.SubmissionHandler.Order)
		api.OPTIONS("/orders", deps.SubmissionHandler.Order)
	}

	return r
}
