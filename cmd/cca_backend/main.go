package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/abishekraja/currency_converter_app/internal/adapters/rateapi"
	portssvc "github.com/abishekraja/currency_converter_app/internal/core/ports/services"
	"github.com/abishekraja/currency_converter_app/internal/core/services"
	"github.com/abishekraja/currency_converter_app/internal/handlers"
	"github.com/abishekraja/currency_converter_app/internal/middleware"
	"github.com/abishekraja/currency_converter_app/internal/repositories/database/mongodb"
	"github.com/abishekraja/currency_converter_app/pkg/config"
	"github.com/abishekraja/currency_converter_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Currency Converter API
// @version 1.0
// @description Backend for the currency converter dashboard: live rate lookups and conversion history.

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

	// The database connection is established lazily on the first request and
	// cached for the process lifetime; startup never blocks on the store.
	connector := database.NewConnector(cfg.MongoURI, cfg.DBConnectTimeout)

	conversionRepo := mongodb.NewConversionRepository(connector, cfg.MongoDatabase)

	rateClient := rateapi.NewClient(rateapi.Options{
		BaseURL:     cfg.RateAPIURL,
		APIKey:      cfg.RateAPIKey,
		HTTPTimeout: cfg.RateHTTPTimeout,
		MaxAttempts: cfg.RateRetryAttempts,
		RetryDelay:  cfg.RateRetryDelay,
		Logger:      logger,
	})

	container := &portssvc.ServiceContainer{
		Conversion: services.NewConversionService(conversionRepo),
		Rate:       services.NewRateService(rateClient, cfg.RateCacheTTL),
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The browser UI is served from a separate origin
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendBaseURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	handlers.RegisterRoutes(r, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
