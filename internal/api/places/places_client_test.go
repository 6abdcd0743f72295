package places

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barhop/barhop-api/app/observability/metrics"
	"github.com/barhop/barhop-api/internal/types"
)

func TestMain(m *testing.M) {
	metrics.InitAppMetrics()
	os.Exit(m.Run())
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestService(t *testing.T, handler http.Handler) *ServiceImpl {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	service, err := NewServiceImpl(server.URL, "test-key", "distance-key", testLogger())
	require.NoError(t, err)
	return service
}

func TestNewServiceImpl_RequiresAPIKey(t *testing.T) {
	_, err := NewServiceImpl("http://example.com", "", "", testLogger())
	assert.Error(t, err)
}

func TestGeocode(t *testing.T) {
	var calls atomic.Int32
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/geocode/json", r.URL.Path)
		assert.Equal(t, "East Village", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{"status": "OK", "results": [{"geometry": {"location": {"lat": 40.7265, "lng": -73.9815}}}]}`))
	}))

	location, err := service.Geocode(context.Background(), "East Village")

	require.NoError(t, err)
	assert.InDelta(t, 40.7265, location.Lat, 0.0001)
	assert.InDelta(t, -73.9815, location.Lng, 0.0001)

	// Second lookup is served from the cache, case-insensitively.
	_, err = service.Geocode(context.Background(), "  east village ")
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGeocode_NoResults(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))

	_, err := service.Geocode(context.Background(), "Nowhereville")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `could not geocode "Nowhereville"`)
}

func TestNearbySearch(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/nearbysearch/json", r.URL.Path)
		assert.Equal(t, "bar", r.URL.Query().Get("type"))
		assert.Equal(t, "1500", r.URL.Query().Get("radius"))
		w.Write([]byte(`{"status": "OK", "results": [
			{"place_id": "p1", "name": "Attaboy", "rating": 4.6, "vicinity": "134 Eldridge St"},
			{"place_id": "p2", "name": "Bar Goto", "rating": 4.4, "vicinity": "245 Eldridge St"}
		]}`))
	}))

	found, err := service.NearbySearch(context.Background(), types.Location{Lat: 40.72, Lng: -73.99}, 1500)

	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Attaboy", found[0].Name)
	require.NotNil(t, found[0].Rating)
	assert.InDelta(t, 4.6, *found[0].Rating, 0.001)
}

func TestNearbySearch_ZeroResults(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))

	found, err := service.NearbySearch(context.Background(), types.Location{}, 1000)

	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestNearbySearch_UpstreamDenied(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED"}`))
	}))

	_, err := service.NearbySearch(context.Background(), types.Location{}, 1000)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestPlaceReviews(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/details/json", r.URL.Path)
		assert.Equal(t, "p1", r.URL.Query().Get("place_id"))
		assert.Equal(t, "reviews", r.URL.Query().Get("fields"))
		w.Write([]byte(`{"status": "OK", "result": {"reviews": [
			{"text": "No wait, walked right in"},
			{"text": "Great cocktails"}
		]}}`))
	}))

	reviews, err := service.PlaceReviews(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, []string{"No wait, walked right in", "Great cocktails"}, reviews)
}

func TestTextSearch(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/textsearch/json", r.URL.Path)
		assert.Equal(t, "PDT East Village", r.URL.Query().Get("query"))
		w.Write([]byte(`{"status": "OK", "results": [{"place_id": "pdt", "name": "PDT"}]}`))
	}))

	found, err := service.TextSearch(context.Background(), "PDT East Village")

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "PDT", found[0].Name)
}

func TestWalkingDistance(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/distancematrix/json", r.URL.Path)
		assert.Equal(t, "walking", r.URL.Query().Get("mode"))
		assert.Equal(t, "distance-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{"status": "OK", "rows": [{"elements": [
			{"status": "OK", "distance": {"text": "0.4 mi"}, "duration": {"text": "9 mins"}}
		]}]}`))
	}))

	distance, err := service.WalkingDistance(context.Background(),
		types.Location{Lat: 40.72, Lng: -73.99}, types.Location{Lat: 40.73, Lng: -73.98})

	require.NoError(t, err)
	assert.Equal(t, "0.4 mi", distance.Distance)
	assert.Equal(t, "9 mins", distance.Duration)
}

func TestWalkingDistance_MissingKey(t *testing.T) {
	service, err := NewServiceImpl("http://example.com", "test-key", "", testLogger())
	require.NoError(t, err)

	_, err = service.WalkingDistance(context.Background(), types.Location{}, types.Location{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "distance matrix API key is not configured")
}

func TestWalkingDistance_NoRoute(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OK", "rows": [{"elements": [{"status": "NOT_FOUND"}]}]}`))
	}))

	_, err := service.WalkingDistance(context.Background(), types.Location{}, types.Location{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to calculate walking distance")
}

func TestGet_NonOKHTTPStatus(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := service.NearbySearch(context.Background(), types.Location{}, 1000)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}
