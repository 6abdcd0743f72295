package bars

import (
	"log/slog"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/barhop/barhop-api/internal/api"
	"github.com/barhop/barhop-api/internal/types"
)

type BarsHandler struct {
	barsService   Service
	defaultRadius int
	logger        *slog.Logger
}

func NewBarsHandler(barsService Service, defaultRadius int, logger *slog.Logger) *BarsHandler {
	return &BarsHandler{
		barsService:   barsService,
		defaultRadius: defaultRadius,
		logger:        logger,
	}
}

// GetNearbyBars returns filtered bars around a coordinate pair.
func (h *BarsHandler) GetNearbyBars(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GetNearbyBars").Start(r.Context(), "GetNearbyBars", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/bars/nearby"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetNearbyBars"))
	l.DebugContext(ctx, "Get Nearby Bars handler invoked")

	latStr := r.URL.Query().Get("lat")
	lngStr := r.URL.Query().Get("lng")
	if latStr == "" || lngStr == "" {
		l.ErrorContext(ctx, "Latitude and longitude are required")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Latitude and longitude are required")
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		l.ErrorContext(ctx, "Invalid latitude", slog.String("lat", latStr), slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid latitude")
		return
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		l.ErrorContext(ctx, "Invalid longitude", slog.String("lng", lngStr), slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid longitude")
		return
	}

	radius := h.defaultRadius
	if radiusStr := r.URL.Query().Get("radius"); radiusStr != "" {
		radius, err = strconv.Atoi(radiusStr)
		if err != nil || radius <= 0 {
			l.ErrorContext(ctx, "Invalid radius", slog.String("radius", radiusStr))
			api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid radius")
			return
		}
	}

	barsFound, err := h.barsService.NearbyBars(ctx, types.Location{Lat: lat, Lng: lng}, radius)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch nearby bars", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch nearby bars")
		return
	}

	l.InfoContext(ctx, "Successfully fetched nearby bars", slog.Int("count", len(barsFound)))
	api.WriteJSONResponse(w, r, http.StatusOK, map[string][]types.Bar{"bars": barsFound})
}
