package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/barhop/barhop-api/app/observability/metrics"
	"github.com/barhop/barhop-api/internal/types"
)

const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service is the contract for the external mapping/places collaborator.
type Service interface {
	Geocode(ctx context.Context, address string) (types.Location, error)
	NearbySearch(ctx context.Context, location types.Location, radius int) ([]types.Bar, error)
	PlaceReviews(ctx context.Context, placeID string) ([]string, error)
	TextSearch(ctx context.Context, query string) ([]types.Bar, error)
	WalkingDistance(ctx context.Context, origin, destination types.Location) (*types.WalkingDistance, error)
}

// ServiceImpl talks to the Google Maps web services over plain HTTP.
type ServiceImpl struct {
	baseURL     string
	apiKey      string
	distanceKey string
	httpClient  *http.Client
	geoCache    *cache.Cache
	logger      *slog.Logger
}

// NewServiceImpl creates the places client. apiKey covers geocoding,
// nearby/text search, and place details; distanceKey covers the
// distance matrix (the two products are billed separately).
func NewServiceImpl(baseURL, apiKey, distanceKey string, logger *slog.Logger) (*ServiceImpl, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("places API key is not configured")
	}
	return &ServiceImpl{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		apiKey:      apiKey,
		distanceKey: distanceKey,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		geoCache:    cache.New(24*time.Hour, 1*time.Hour), // neighborhood coordinates are stable
		logger:      logger,
	}, nil
}

func (s *ServiceImpl) get(ctx context.Context, endpoint string, params url.Values, dst interface{}) error {
	ctx, span := otel.Tracer("PlacesService").Start(ctx, endpoint)
	defer span.End()

	startTime := time.Now()
	reqURL := fmt.Sprintf("%s/%s/json?%s", s.baseURL, endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build places request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	m := metrics.Get()
	m.PlacesRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("endpoint", endpoint)))
	m.PlacesRequestDurationSeconds.Record(ctx, time.Since(startTime).Seconds(), metric.WithAttributes(attribute.String("endpoint", endpoint)))
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("places API returned HTTP %d", resp.StatusCode)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to decode places response: %w", err)
	}
	return nil
}

// Geocode resolves a free-text address to coordinates. Results are
// cached for a day.
func (s *ServiceImpl) Geocode(ctx context.Context, address string) (types.Location, error) {
	cacheKey := "geocode:" + strings.ToLower(strings.TrimSpace(address))
	if cached, found := s.geoCache.Get(cacheKey); found {
		return cached.(types.Location), nil
	}

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", s.apiKey)

	var out geocodeResponse
	if err := s.get(ctx, "geocode", params, &out); err != nil {
		return types.Location{}, err
	}
	if out.Status != statusOK || len(out.Results) == 0 {
		return types.Location{}, fmt.Errorf("could not geocode %q: status %s", address, out.Status)
	}

	location := out.Results[0].Geometry.Location
	s.geoCache.Set(cacheKey, location, cache.DefaultExpiration)
	return location, nil
}

// NearbySearch returns raw bar venues around a location.
func (s *ServiceImpl) NearbySearch(ctx context.Context, location types.Location, radius int) ([]types.Bar, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", location.Lat, location.Lng))
	params.Set("radius", strconv.Itoa(radius))
	params.Set("type", "bar")
	params.Set("key", s.apiKey)

	var out searchResponse
	if err := s.get(ctx, "place/nearbysearch", params, &out); err != nil {
		return nil, err
	}
	if out.Status == statusZeroResults {
		return []types.Bar{}, nil
	}
	if out.Status != statusOK {
		return nil, fmt.Errorf("nearby search failed: status %s", out.Status)
	}
	return out.Results, nil
}

// PlaceReviews fetches the recent review texts for a venue.
func (s *ServiceImpl) PlaceReviews(ctx context.Context, placeID string) ([]string, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "reviews")
	params.Set("key", s.apiKey)

	var out detailsResponse
	if err := s.get(ctx, "place/details", params, &out); err != nil {
		return nil, err
	}
	if out.Status != statusOK {
		return nil, fmt.Errorf("place details failed: status %s", out.Status)
	}

	reviews := make([]string, 0, len(out.Result.Reviews))
	for _, review := range out.Result.Reviews {
		reviews = append(reviews, review.Text)
	}
	return reviews, nil
}

// TextSearch looks venues up by free-text query. Used as the fallback
// when a must-include bar is missing from the nearby results.
func (s *ServiceImpl) TextSearch(ctx context.Context, query string) ([]types.Bar, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("key", s.apiKey)

	var out searchResponse
	if err := s.get(ctx, "place/textsearch", params, &out); err != nil {
		return nil, err
	}
	if out.Status == statusZeroResults {
		return []types.Bar{}, nil
	}
	if out.Status != statusOK {
		return nil, fmt.Errorf("text search failed: status %s", out.Status)
	}
	return out.Results, nil
}

// WalkingDistance returns a human-readable walking distance and
// duration between two coordinates.
func (s *ServiceImpl) WalkingDistance(ctx context.Context, origin, destination types.Location) (*types.WalkingDistance, error) {
	if s.distanceKey == "" {
		return nil, fmt.Errorf("distance matrix API key is not configured")
	}
	params := url.Values{}
	params.Set("origins", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	params.Set("destinations", fmt.Sprintf("%f,%f", destination.Lat, destination.Lng))
	params.Set("mode", "walking")
	params.Set("key", s.distanceKey)

	var out distanceMatrixResponse
	if err := s.get(ctx, "distancematrix", params, &out); err != nil {
		return nil, err
	}
	if out.Status != statusOK {
		return nil, fmt.Errorf("distance matrix failed: status %s", out.Status)
	}
	if len(out.Rows) == 0 || len(out.Rows[0].Elements) == 0 || out.Rows[0].Elements[0].Status != statusOK {
		return nil, fmt.Errorf("unable to calculate walking distance")
	}

	element := out.Rows[0].Elements[0]
	return &types.WalkingDistance{
		Distance: element.Distance.Text,
		Duration: element.Duration.Text,
	}, nil
}
