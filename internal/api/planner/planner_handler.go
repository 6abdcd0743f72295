package planner

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/barhop/barhop-api/internal/api"
	"github.com/barhop/barhop-api/internal/types"
)

type PlannerHandler struct {
	plannerService Service
	logger         *slog.Logger
}

func NewPlannerHandler(plannerService Service, logger *slog.Logger) *PlannerHandler {
	return &PlannerHandler{
		plannerService: plannerService,
		logger:         logger,
	}
}

// PlanCrawl generates a bar crawl for the submitted preferences.
func (h *PlannerHandler) PlanCrawl(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlanCrawl").Start(r.Context(), "PlanCrawl", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/crawl/plan"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "PlanCrawl"))
	l.DebugContext(ctx, "Plan Crawl handler invoked")

	var preferences types.PlanningPreferences
	if err := api.DecodeJSONBody(w, r, &preferences); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if preferences.Neighborhood == "" {
		l.ErrorContext(ctx, "Neighborhood is required")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Neighborhood is required")
		return
	}
	if preferences.NumberOfStops < 1 {
		l.ErrorContext(ctx, "Number of stops must be positive", slog.Int("numberOfStops", preferences.NumberOfStops))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Number of stops must be at least 1")
		return
	}

	crawl, err := h.plannerService.PlanCrawl(ctx, preferences)
	if err != nil {
		l.ErrorContext(ctx, "Failed to generate bar crawl plan", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to generate bar crawl plan")
		return
	}

	l.InfoContext(ctx, "Successfully generated bar crawl plan", slog.String("crawl_id", crawl.ID.String()))
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]*types.BarCrawl{"crawl": crawl})
}
