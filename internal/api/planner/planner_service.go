package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/genai"

	"github.com/barhop/barhop-api/app/observability/metrics"
	"github.com/barhop/barhop-api/internal/api/bars"
	"github.com/barhop/barhop-api/internal/api/places"
	"github.com/barhop/barhop-api/internal/types"
)

const defaultTemperature = 0.7

// AIClient is the slice of the generative client the planner needs.
type AIClient interface {
	GenerateCompletion(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for crawl planning.
type Service interface {
	PlanCrawl(ctx context.Context, preferences types.PlanningPreferences) (*types.BarCrawl, error)
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger        *slog.Logger
	placesService places.Service
	barsService   bars.Service
	aiClient      AIClient
	searchRadius  int
}

func NewServiceImpl(placesService places.Service, barsService bars.Service, aiClient AIClient, searchRadius int, logger *slog.Logger) *ServiceImpl {
	if searchRadius <= 0 {
		searchRadius = 1500
	}
	return &ServiceImpl{
		logger:        logger,
		placesService: placesService,
		barsService:   barsService,
		aiClient:      aiClient,
		searchRadius:  searchRadius,
	}
}

// PlanCrawl runs the full pipeline: geocode, search, filter, enrich,
// prompt, parse, validate, assemble. Any failure aborts the request;
// there is no retry and no partial result.
func (s *ServiceImpl) PlanCrawl(ctx context.Context, preferences types.PlanningPreferences) (*types.BarCrawl, error) {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "PlanCrawl")
	defer span.End()

	l := s.logger.With(slog.String("neighborhood", preferences.Neighborhood))
	l.DebugContext(ctx, "Starting crawl planning", slog.Int("stops", preferences.NumberOfStops))

	location, err := s.placesService.Geocode(ctx, preferences.Neighborhood)
	if err != nil {
		return nil, fmt.Errorf("could not find the specified neighborhood: %w", err)
	}

	results, err := s.placesService.NearbySearch(ctx, location, s.searchRadius)
	if err != nil {
		return nil, fmt.Errorf("failed to find bars in the area: %w", err)
	}

	candidates := bars.FilterAdultVenues(results)
	candidates = bars.FilterByNeighborhood(candidates, preferences.Neighborhood)
	candidates = dropVetoed(candidates, preferences.VetoedBars)

	if preferences.MustGoBar != "" && !containsBarName(candidates, preferences.MustGoBar) {
		candidates = s.appendMustGoBar(ctx, candidates, preferences)
	}

	if len(candidates) < preferences.NumberOfStops {
		return nil, fmt.Errorf("only %d suitable bars found in %s, cannot plan %d stops",
			len(candidates), preferences.Neighborhood, preferences.NumberOfStops)
	}

	candidates = s.barsService.EnrichWaitTimes(ctx, candidates)

	prompt := buildCrawlPrompt(preferences, candidates)
	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](defaultTemperature),
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	responseText, err := s.aiClient.GenerateCompletion(ctx, prompt, config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate crawl plan: %w", err)
	}

	crawlData, err := parseCrawl(responseText)
	if err != nil {
		l.ErrorContext(ctx, "Model returned an unparseable plan", slog.Any("error", err))
		return nil, err
	}

	if err := validateCrawl(crawlData.Stops, candidates, preferences); err != nil {
		metrics.Get().PlanValidationFailuresTotal.Add(ctx, 1)
		l.ErrorContext(ctx, "Generated plan failed validation", slog.Any("error", err))
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("generated plan is invalid: %w", err)
	}

	crawl := &types.BarCrawl{
		ID:                 uuid.New(),
		Stops:              make([]types.CrawlStop, 0, len(crawlData.Stops)),
		TotalEstimatedTime: crawlData.TotalEstimatedTime,
		Overview:           crawlData.Overview,
	}
	for _, stop := range crawlData.Stops {
		crawl.Stops = append(crawl.Stops, types.CrawlStop{
			Bar:           candidates[stop.BarIndex],
			Order:         stop.Order,
			Reasoning:     stop.Reasoning,
			EstimatedTime: stop.EstimatedTime,
			VisitType:     stop.VisitType,
			CommuteToNext: stop.CommuteToNext,
		})
	}

	span.SetAttributes(attribute.Int("crawl.stops", len(crawl.Stops)))
	l.InfoContext(ctx, "Successfully planned crawl",
		slog.String("crawl_id", crawl.ID.String()),
		slog.Int("stop_count", len(crawl.Stops)))
	return crawl, nil
}

func dropVetoed(venues []types.Bar, vetoed []string) []types.Bar {
	if len(vetoed) == 0 {
		return venues
	}
	vetoedSet := make(map[string]struct{}, len(vetoed))
	for _, placeID := range vetoed {
		vetoedSet[placeID] = struct{}{}
	}
	kept := make([]types.Bar, 0, len(venues))
	for _, venue := range venues {
		if _, found := vetoedSet[venue.PlaceID]; !found {
			kept = append(kept, venue)
		}
	}
	return kept
}

func containsBarName(venues []types.Bar, name string) bool {
	wanted := strings.ToLower(name)
	for _, venue := range venues {
		current := strings.ToLower(venue.Name)
		if strings.Contains(current, wanted) || strings.Contains(wanted, current) {
			return true
		}
	}
	return false
}

// appendMustGoBar falls back to a text search when the requested bar is
// outside the nearby results. A lookup failure is logged and tolerated;
// the validator will reject the final plan if the bar stays missing.
func (s *ServiceImpl) appendMustGoBar(ctx context.Context, candidates []types.Bar, preferences types.PlanningPreferences) []types.Bar {
	query := fmt.Sprintf("%s %s", preferences.MustGoBar, preferences.Neighborhood)
	found, err := s.placesService.TextSearch(ctx, query)
	if err != nil {
		s.logger.WarnContext(ctx, "Text search for must-include bar failed",
			slog.String("bar", preferences.MustGoBar), slog.Any("error", err))
		return candidates
	}
	for _, venue := range found {
		if venue.BusinessStatus == types.BusinessStatusOperational || venue.BusinessStatus == "" {
			s.logger.InfoContext(ctx, "Added must-include bar via text search",
				slog.String("bar", venue.Name))
			return append(candidates, venue)
		}
	}
	s.logger.WarnContext(ctx, "Must-include bar not found via text search",
		slog.String("bar", preferences.MustGoBar))
	return candidates
}
