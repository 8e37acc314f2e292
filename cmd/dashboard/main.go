package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ignamartinoli/banking-ui/internal/client"
	"github.com/ignamartinoli/banking-ui/internal/core/services"
	"github.com/ignamartinoli/banking-ui/internal/handlers"
	"github.com/ignamartinoli/banking-ui/internal/middleware"
	"github.com/ignamartinoli/banking-ui/internal/platform/auth"
	"github.com/ignamartinoli/banking-ui/internal/platform/config"
	"github.com/ignamartinoli/banking-ui/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The backend session is an explicit value handed to the client;
	// nothing reads the token from global state.
	session := auth.NewSession(cfg.APIToken)
	if session.Expired() {
		logger.Warn("API token is past its expiry; backend calls will likely be rejected")
	}

	api := client.New(client.Config{
		BaseURL: cfg.APIBaseURL,
		Session: session,
		Timeout: cfg.HTTPTimeout,
	}, logger)

	registry := prometheus.NewRegistry()
	recorder := metrics.New(registry)

	snapshots := services.NewSnapshotService(api, recorder)
	create := services.NewCreateAccountSession(api, snapshots)
	deposit := services.NewDepositSession(api, snapshots)
	transfer := services.NewTransferSession(api, snapshots)

	// Warm the snapshot; a failure here is not fatal, the dashboard
	// starts empty and the page can retry via POST /api/refresh.
	warmCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
	if err := snapshots.Refresh(warmCtx); err != nil {
		logger.Warn("Initial snapshot fetch failed", slog.String("error", err.Error()))
	}
	cancel()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	limiterInstance := limiter.New(memorystore.NewStore(), rate)

	api1 := r.Group("/api", middleware.RateLimit(limiterInstance))
	handlers.RegisterRoutes(api1, snapshots, create, deposit, transfer, recorder)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	logger.Info("Dashboard server starting",
		slog.String("port", cfg.Port),
		slog.String("backend", cfg.APIBaseURL),
		slog.Duration("http_timeout", cfg.HTTPTimeout))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
