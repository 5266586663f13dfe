package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trainpulse/internal/metrics"
	"github.com/guttosm/trainpulse/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// DefaultRequestTimeout bounds every request's context.
const DefaultRequestTimeout = 10 * time.Second

// RouterOptions tunes the middleware chain.
type RouterOptions struct {
	RateLimitPerMinute int
	RequestTimeout     time.Duration
}

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Metrics, Recovery, ErrorHandler, RateLimiter).
//   - Adds request timeout handling (10 seconds unless overridden).
//   - Mounts Swagger docs (/swagger/*any) and Prometheus metrics (/metrics).
//   - Configures API v1 routes (/api/v1).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(opts.RateLimitPerMinute, time.Minute),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger & metrics ────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.GET("/hours", handler.GetHours)
		v1.GET("/filters", handler.GetFilters)
		v1.GET("/progress/exams", handler.GetExamProgress)
		v1.GET("/progress/competitors", handler.GetCompetitorSummary)

		v1.GET("/targets", handler.GetTargets)
		v1.PUT("/targets", handler.SaveTargets)

		v1.GET("/goals", handler.ListGoals)
		v1.POST("/goals", handler.CreateGoal)
		v1.PATCH("/goals/:id/progress", handler.UpdateGoalProgress)
	}

	return router
}
