package http

import (
	"time"

	"artist_marketplace/internal/http/handlers"
	"artist_marketplace/internal/http/middleware"
	"artist_marketplace/internal/ws"

	"github.com/gin-gonic/gin"
)

// RouterDeps carries everything the route table needs.
type RouterDeps struct {
	Handler       *handlers.Handler
	HealthHandler *handlers.HealthHandler
	FunnelHub     *ws.Hub
	APIRateLimit  int
	APIRateWindow time.Duration
}

func RegisterRoutes(r *gin.Engine, deps RouterDeps) {
	h := deps.Handler

	// Health checks (no rate limiting)
	r.GET("/health", deps.HealthHandler.Health)
	r.GET("/healthz", deps.HealthHandler.Liveness)
	r.GET("/readyz", deps.HealthHandler.Readiness)

	api := r.Group("/api/v1")
	api.Use(middleware.RedisRateLimit(deps.APIRateLimit, deps.APIRateWindow))

	// Public pricing calculators
	api.GET("/plans", h.GetPlans)
	api.GET("/earnings/split", h.GetSaleSplit)
	api.GET("/earnings/projection", h.GetMonthlyProjection)

	// Artist profile
	api.GET("/me", middleware.JWT(), h.MyProfile)
	api.GET("/me/completeness", middleware.JWT(), h.MyCompleteness)
	api.GET("/me/artworks", middleware.JWT(), h.MyArtworks)

	// Onboarding wizard
	onboarding := api.Group("/onboarding")
	onboarding.Use(middleware.JWT())
	{
		onboarding.GET("/state", h.GetOnboardingState)
		onboarding.POST("/advance", h.AdvanceStep)
		onboarding.POST("/skip", h.SkipOnboarding)
		onboarding.POST("/plan", h.SelectPlan)
		onboarding.POST("/complete", h.CompleteOnboarding)
		onboarding.POST("/artworks", h.AddOnboardingArtwork)
	}

	// Billing activation callback; in-process limiter so it stays limited
	// even without Redis
	api.POST("/billing/webhook", middleware.SimpleRateLimit(30, time.Minute), h.BillingWebhook)

	// Lifecycle event stream for the admin funnel dashboard
	r.GET("/ws/funnel", h.Funnel(deps.FunnelHub))
}
