package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	appLogger "github.com/barhop/barhop-api/app/logger"
	"github.com/barhop/barhop-api/app/observability/metrics"
	"github.com/barhop/barhop-api/app/tracer"
	"github.com/barhop/barhop-api/config"
	"github.com/barhop/barhop-api/internal/api/bars"
	"github.com/barhop/barhop-api/internal/api/distance"
	generativeAI "github.com/barhop/barhop-api/internal/api/generative_ai"
	"github.com/barhop/barhop-api/internal/api/places"
	"github.com/barhop/barhop-api/internal/api/planner"
	"github.com/barhop/barhop-api/internal/api/vibes"
	api "github.com/barhop/barhop-api/internal/router"
)

func main() {
	// --- Initial Loading ---
	// Use standard log until slog is configured, in case godotenv fails
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	// --- Logger Setup ---
	logger := setupLogger()
	slog.SetDefault(logger) // Set globally after initialization

	// --- Application Context & Shutdown ---
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Observability ---
	if err := tracer.InitTracingAndMetrics(cfg.Handlers.Prometheus.Port, logger); err != nil {
		logger.Error("Failed to initialize tracing and metrics", slog.Any("error", err))
		os.Exit(1)
	}
	metrics.InitAppMetrics()

	// --- External Clients ---
	placesService, err := places.NewServiceImpl(
		cfg.Places.BaseURL,
		os.Getenv("GOOGLE_PLACES_API_KEY"),
		os.Getenv("GOOGLE_DISTANCE_MATRIX_API_KEY"),
		logger,
	)
	if err != nil {
		logger.Error("Failed to create places client", slog.Any("error", err))
		os.Exit(1)
	}

	aiClient, err := generativeAI.NewAIClient(ctx)
	if err != nil {
		logger.Error("Failed to create AI client", slog.Any("error", err))
		os.Exit(1)
	}

	// --- Dependency Injection ---
	barsService := bars.NewServiceImpl(placesService, cfg.Crawl.MaxWaitTimeLookups, logger)
	barsHandler := bars.NewBarsHandler(barsService, cfg.Places.DefaultRadius, logger)

	plannerService := planner.NewServiceImpl(placesService, barsService, aiClient, cfg.Crawl.SearchRadius, logger)
	plannerHandler := planner.NewPlannerHandler(plannerService, logger)

	vibesService := vibes.NewServiceImpl(aiClient, logger)
	vibesHandler := vibes.NewVibesHandler(vibesService, logger)

	distanceHandler := distance.NewDistanceHandler(placesService, logger)

	// --- Router Setup ---
	routerConfig := &api.Config{
		BarsHandler:     barsHandler,
		PlannerHandler:  plannerHandler,
		VibesHandler:    vibesHandler,
		DistanceHandler: distanceHandler,
	}
	mainRouter := api.SetupRouter(routerConfig)

	requestTimeout := cfg.Server.Timeout
	if requestTimeout <= 0 {
		requestTimeout = 60 * time.Second
	}

	router := chi.NewMux() // Use NewMux for Chi v5
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(requestTimeout))
	router.Use(middleware.Compress(5, "application/json")) // Compress JSON responses
	router.Mount("/", mainRouter)

	// --- HTTP Server Setup ---
	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: requestTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError), // Pipe server errors to slog
	}

	// --- Start Server Goroutine ---
	go func() {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel() // Trigger shutdown if server fails unexpectedly
		}
	}()

	// --- Wait for Shutdown Signal ---
	<-ctx.Done() // Block until context is cancelled (Ctrl+C, SIGTERM)

	// --- Graceful Shutdown ---
	logger.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}

	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger() *slog.Logger {
	var logger *slog.Logger
	env := os.Getenv("APP_ENV")

	if env == "development" || env == "" { // Default to development if not set
		// Colored logs for development
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug, // More verbose in dev
			TimeFormat: time.Kitchen,
			AddSource:  true, // Show file:line
		}
		logger = slog.New(tint.NewHandler(os.Stdout, tintOpts))
		log.Println("Initialized development logger (tint)") // Use standard log before slog default is set
	} else {
		// JSON logs for production or other environments
		jsonOpts := &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: false,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
		log.Println("Initialized production logger (JSON)")
	}
	return logger
}
