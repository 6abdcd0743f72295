package bars

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/barhop/barhop-api/internal/api/places"
	"github.com/barhop/barhop-api/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for bar discovery.
type Service interface {
	NearbyBars(ctx context.Context, location types.Location, radius int) ([]types.Bar, error)
	EnrichWaitTimes(ctx context.Context, venues []types.Bar) []types.Bar
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger             *slog.Logger
	placesService      places.Service
	maxWaitTimeLookups int
}

func NewServiceImpl(placesService places.Service, maxWaitTimeLookups int, logger *slog.Logger) *ServiceImpl {
	if maxWaitTimeLookups <= 0 {
		maxWaitTimeLookups = 10
	}
	return &ServiceImpl{
		logger:             logger,
		placesService:      placesService,
		maxWaitTimeLookups: maxWaitTimeLookups,
	}
}

// NearbyBars searches around a location and applies the venue filter.
func (s *ServiceImpl) NearbyBars(ctx context.Context, location types.Location, radius int) ([]types.Bar, error) {
	ctx, span := otel.Tracer("BarsService").Start(ctx, "NearbyBars")
	defer span.End()

	results, err := s.placesService.NearbySearch(ctx, location, radius)
	if err != nil {
		s.logger.ErrorContext(ctx, "Nearby search failed", slog.Any("error", err))
		return nil, fmt.Errorf("failed to fetch nearby bars: %w", err)
	}

	filtered := FilterAdultVenues(results)
	span.SetAttributes(
		attribute.Int("bars.raw_count", len(results)),
		attribute.Int("bars.filtered_count", len(filtered)),
	)
	return filtered, nil
}

// EnrichWaitTimes fetches recent reviews for up to maxWaitTimeLookups
// venues concurrently and attaches a wait label to each. A failed
// lookup degrades that venue to "Wait info unavailable"; the request
// never fails on enrichment. Results merge back by index, so the order
// of completion does not matter.
func (s *ServiceImpl) EnrichWaitTimes(ctx context.Context, venues []types.Bar) []types.Bar {
	limit := len(venues)
	if limit > s.maxWaitTimeLookups {
		limit = s.maxWaitTimeLookups
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWaitTimeLookups)
	for i := 0; i < limit; i++ {
		g.Go(func() error {
			reviews, err := s.placesService.PlaceReviews(gctx, venues[i].PlaceID)
			if err != nil {
				s.logger.WarnContext(gctx, "Failed to fetch reviews for wait-time enrichment",
					slog.String("place_id", venues[i].PlaceID), slog.Any("error", err))
				venues[i].WaitInfo = WaitUnavailable
				return nil
			}
			venues[i].WaitInfo = ClassifyWaitTime(reviews)
			return nil
		})
	}
	_ = g.Wait()

	for i := limit; i < len(venues); i++ {
		venues[i].WaitInfo = WaitUnavailable
	}
	return venues
}
