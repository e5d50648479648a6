// Package main is the entry point for the flight search assistant service.
//
//	@title						Flight Search Assistant API
//	@version					1.0.0
//	@description				An assisted flight search service that expands flexible travel dates into bounded provider queries, normalizes and ranks the offers, and returns an analyzed result set.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/travel-assist/flight-search-assistant/issues
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/travel-assist/flight-search-assistant/docs"

	assistanthttp "github.com/travel-assist/flight-search-assistant/internal/adapter/http"
	"github.com/travel-assist/flight-search-assistant/internal/adapter/http/middleware"
	"github.com/travel-assist/flight-search-assistant/internal/adapter/interpreter/openai"
	"github.com/travel-assist/flight-search-assistant/internal/adapter/provider/amadeus"
	"github.com/travel-assist/flight-search-assistant/internal/config"
	"github.com/travel-assist/flight-search-assistant/internal/domain"
	"github.com/travel-assist/flight-search-assistant/internal/infrastructure/cache"
	"github.com/travel-assist/flight-search-assistant/internal/infrastructure/logger"
	"github.com/travel-assist/flight-search-assistant/internal/infrastructure/ratelimit"
	"github.com/travel-assist/flight-search-assistant/internal/infrastructure/timeutil"
	"github.com/travel-assist/flight-search-assistant/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-assistant",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log)

	offerCache := buildOfferCache(cfg, log)
	defer offerCache.Close()

	setupRoutes(e, cfg, offerCache, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// buildOfferCache connects the Redis offer cache when configured. A failed
// connection degrades to the no-op cache so the service still starts.
func buildOfferCache(cfg *config.Config, log zerolog.Logger) cache.OfferCache {
	if !cfg.Redis.Enabled {
		return cache.NewNoOpCache()
	}

	redisCache, err := cache.NewRedisCache(cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL,
	})
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).
			Msg("Redis unavailable, running without offer cache")
		return cache.NewNoOpCache()
	}

	log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.TTL).
		Msg("Offer cache connected")
	return redisCache
}

// setupRoutes wires the adapters into the use case and registers the routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, offerCache cache.OfferCache, log zerolog.Logger) {
	searcher := amadeus.NewClient(amadeus.Config{
		BaseURL:      cfg.Amadeus.BaseURL,
		TokenURL:     cfg.Amadeus.TokenURL,
		ClientID:     cfg.Amadeus.ClientID,
		ClientSecret: cfg.Amadeus.ClientSecret,
		Timeout:      cfg.Amadeus.Timeout,
		RateLimit: ratelimit.Config{
			RequestsPerSecond: cfg.Amadeus.RequestsPerSecond,
			BurstSize:         cfg.Amadeus.Burst,
		},
	}, timeutil.NewRealClock(), log)

	// The interpreter is optional; without it, free-text queries fall back
	// to default preferences.
	var interpreter domain.PreferenceInterpreter
	if cfg.Interpreter.Enabled() {
		interpreter = openai.NewClient(openai.Config{
			BaseURL: cfg.Interpreter.BaseURL,
			APIKey:  cfg.Interpreter.APIKey,
			Model:   cfg.Interpreter.Model,
			Timeout: cfg.Interpreter.Timeout,
		}, log)
		log.Info().Str("model", cfg.Interpreter.Model).Msg("Preference interpreter enabled")
	} else {
		log.Info().Msg("Preference interpreter not configured, free-text queries use default preferences")
	}

	assistant := usecase.NewAssistantUseCase(searcher, interpreter, offerCache, log, &usecase.Config{
		GlobalTimeout: cfg.Search.GlobalTimeout,
		BatchTimeout:  cfg.Search.BatchTimeout,
		MaxDispatched: cfg.Search.MaxDispatched,
	})

	handler := assistanthttp.NewAssistantHandler(assistant)
	assistanthttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log zerolog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
