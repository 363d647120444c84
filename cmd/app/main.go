package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artist_marketplace/internal/billing"
	"artist_marketplace/internal/config"
	"artist_marketplace/internal/db"
	httpServer "artist_marketplace/internal/http"
	"artist_marketplace/internal/http/handlers"
	"artist_marketplace/internal/http/middleware"
	"artist_marketplace/internal/logger"
	"artist_marketplace/internal/repository"
	"artist_marketplace/internal/service"
	"artist_marketplace/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var version = "dev"

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)
	service.InitJWT(cfg.JWTSecret)

	pool := db.Connect(cfg.DatabaseURL)
	defer pool.Close()

	funnelHub := ws.NewHub()
	analytics := service.NewBufferedAnalytics(
		cfg.AnalyticsBatchSize,
		cfg.AnalyticsFlushInterval,
		service.LogSink{},
		funnelHub,
	)
	defer analytics.Close()

	checkout := billing.NewClient(cfg.BillingAPIURL, cfg.BillingAPIKey)
	onboarding := service.NewOnboardingService(
		repository.NewProfileRepository(pool),
		repository.NewOnboardingRepository(pool),
		checkout,
		analytics,
	)

	r := gin.Default()

	// CORS for production (frontend on a different domain)
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpServer.RegisterRoutes(r, httpServer.RouterDeps{
		Handler:       handlers.NewHandler(pool, onboarding, cfg.BillingWebhookSecret),
		HealthHandler: handlers.NewHealthHandler(pool, version),
		FunnelHub:     funnelHub,
		APIRateLimit:  cfg.APIRateLimit,
		APIRateWindow: cfg.APIRateWindow,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
