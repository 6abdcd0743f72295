package distance

import (
	"log/slog"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/barhop/barhop-api/internal/api"
	"github.com/barhop/barhop-api/internal/api/places"
	"github.com/barhop/barhop-api/internal/types"
)

type DistanceHandler struct {
	placesService places.Service
	logger        *slog.Logger
}

func NewDistanceHandler(placesService places.Service, logger *slog.Logger) *DistanceHandler {
	return &DistanceHandler{
		placesService: placesService,
		logger:        logger,
	}
}

// GetWalkingDistance returns the walking distance and duration between
// an origin and destination coordinate pair.
func (h *DistanceHandler) GetWalkingDistance(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GetWalkingDistance").Start(r.Context(), "GetWalkingDistance", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/distance/walking"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetWalkingDistance"))
	l.DebugContext(ctx, "Get Walking Distance handler invoked")

	coords := make(map[string]float64, 4)
	for _, key := range []string{"origin_lat", "origin_lng", "dest_lat", "dest_lng"} {
		raw := r.URL.Query().Get(key)
		if raw == "" {
			l.ErrorContext(ctx, "Origin and destination coordinates are required", slog.String("missing", key))
			api.ErrorResponse(w, r, http.StatusBadRequest, "Origin and destination coordinates are required")
			return
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			l.ErrorContext(ctx, "Invalid coordinate", slog.String("param", key), slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid coordinate: "+key)
			return
		}
		coords[key] = value
	}

	result, err := h.placesService.WalkingDistance(ctx,
		types.Location{Lat: coords["origin_lat"], Lng: coords["origin_lng"]},
		types.Location{Lat: coords["dest_lat"], Lng: coords["dest_lng"]},
	)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch walking distance", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch walking distance")
		return
	}

	l.InfoContext(ctx, "Successfully fetched walking distance")
	api.WriteJSONResponse(w, r, http.StatusOK, result)
}
