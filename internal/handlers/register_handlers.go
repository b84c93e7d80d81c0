package handlers

import (
	portssvc "github.com/SscSPs/hot_settlement_app/internal/core/ports/services"
	"github.com/SscSPs/hot_settlement_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimit gin.HandlerFunc,
) {
	// Health check route for deployment probes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	r.GET("/", getHome)

	setupParseRoutes(r, cfg, services, rateLimit)
}

// setupParseRoutes configures the upload-and-parse endpoints. They all
// share the rate limiter: parsing is the only expensive operation here.
func setupParseRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimit gin.HandlerFunc,
) {
	parseHandler := NewParseHandler(services.Parser, services.Export, cfg.MaxUploadBytes)

	parse := r.Group("/parse")
	if rateLimit != nil {
		parse.Use(rateLimit)
	}
	parse.POST("", parseHandler.ParseFile)
	parse.POST("/csv", parseHandler.ParseFileCSV)
	parse.POST("/report", parseHandler.ParseFileReport)
}
