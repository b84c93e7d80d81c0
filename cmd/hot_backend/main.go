package main

import (
	"log/slog"
	"os"
	"time"

	portssvc "github.com/SscSPs/hot_settlement_app/internal/core/ports/services"
	"github.com/SscSPs/hot_settlement_app/internal/core/services"
	"github.com/SscSPs/hot_settlement_app/internal/handlers"
	"github.com/SscSPs/hot_settlement_app/internal/middleware"
	"github.com/SscSPs/hot_settlement_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title HOT Settlement Parser API
// @version 1.0
// @description Upload IATA BSP HOT settlement files and receive parsed results.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateLimit, err := buildRateLimiter(cfg)
	if err != nil {
		logger.Error("Failed to configure rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svcContainer := &portssvc.ServiceContainer{
		Parser: services.NewParserService(cfg.ParserOptions()),
		Export: services.NewExportService(),
	}

	handlers.RegisterRoutes(r, cfg, svcContainer, rateLimit)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildRateLimiter turns the configured rate string (e.g. "60-M") into a
// Gin middleware backed by an in-memory store.
func buildRateLimiter(cfg *config.Config) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return nil, err
	}
	store := memory.NewStore()
	return middleware.RateLimit(limiter.New(store, rate)), nil
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsCfg.MaxAge = 12 * time.Hour

	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return corsCfg
}
