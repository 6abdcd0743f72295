package vibes

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/barhop/barhop-api/internal/api"
	"github.com/barhop/barhop-api/internal/types"
)

type VibesHandler struct {
	vibesService Service
	logger       *slog.Logger
}

func NewVibesHandler(vibesService Service, logger *slog.Logger) *VibesHandler {
	return &VibesHandler{
		vibesService: vibesService,
		logger:       logger,
	}
}

// GetVibeRecommendations matches each vibe with its best bar from the
// submitted list.
func (h *VibesHandler) GetVibeRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GetVibeRecommendations").Start(r.Context(), "GetVibeRecommendations", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/bars/vibes"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetVibeRecommendations"))
	l.DebugContext(ctx, "Get Vibe Recommendations handler invoked")

	var req struct {
		Bars []types.Bar `json:"bars"`
	}
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Bars) == 0 {
		l.ErrorContext(ctx, "No bars provided")
		api.ErrorResponse(w, r, http.StatusBadRequest, "No bars provided")
		return
	}

	recommendations, err := h.vibesService.RecommendByVibe(ctx, req.Bars)
	if err != nil {
		l.ErrorContext(ctx, "Failed to generate vibe recommendations", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to generate vibe recommendations")
		return
	}

	l.InfoContext(ctx, "Successfully generated vibe recommendations", slog.Int("count", len(recommendations)))
	api.WriteJSONResponse(w, r, http.StatusOK, map[string][]types.VibeRecommendation{"recommendations": recommendations})
}
