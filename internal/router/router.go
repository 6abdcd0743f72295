package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/barhop/barhop-api/internal/api/bars"
	"github.com/barhop/barhop-api/internal/api/distance"
	"github.com/barhop/barhop-api/internal/api/planner"
	"github.com/barhop/barhop-api/internal/api/vibes"
)

// Config contains dependencies needed for the router setup
type Config struct {
	BarsHandler     *bars.BarsHandler
	PlannerHandler  *planner.PlannerHandler
	VibesHandler    *vibes.VibesHandler
	DistanceHandler *distance.DistanceHandler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (like logger, requestID, recoverer) are expected
// to be applied *before* mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any major browsers
	}))

	// Heartbeat/Health check endpoint
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/bars/nearby", cfg.BarsHandler.GetNearbyBars)
		r.Post("/bars/vibes", cfg.VibesHandler.GetVibeRecommendations)
		r.Post("/crawl/plan", cfg.PlannerHandler.PlanCrawl)
		r.Get("/distance/walking", cfg.DistanceHandler.GetWalkingDistance)
	})

	return r
}
