package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barhop/barhop-api/internal/types"
)

func candidateBars(names ...string) []types.Bar {
	bars := make([]types.Bar, len(names))
	for i, name := range names {
		bars[i] = types.Bar{PlaceID: "id-" + name, Name: name}
	}
	return bars
}

func stopsFromIndices(indices ...int) []rawStop {
	stops := make([]rawStop, len(indices))
	for i, index := range indices {
		stops[i] = rawStop{BarIndex: index, Order: i + 1}
	}
	return stops
}

func TestValidateCrawl_Valid(t *testing.T) {
	venues := candidateBars("Alpha", "Beta", "Gamma")
	prefs := types.PlanningPreferences{NumberOfStops: 3}

	err := validateCrawl(stopsFromIndices(0, 1, 2), venues, prefs)

	assert.NoError(t, err)
}

func TestValidateCrawl_IndexOutOfRange(t *testing.T) {
	venues := candidateBars("Alpha", "Beta")
	prefs := types.PlanningPreferences{NumberOfStops: 2}

	err := validateCrawl(stopsFromIndices(0, 5), venues, prefs)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bar index 5")
	assert.Contains(t, err.Error(), "only 2 bars are available")
}

func TestValidateCrawl_DuplicateVenues(t *testing.T) {
	venues := candidateBars("Alpha", "Beta", "Gamma")
	prefs := types.PlanningPreferences{NumberOfStops: 3}

	err := validateCrawl(stopsFromIndices(0, 1, 0), venues, prefs)

	require.Error(t, err)
	assert.EqualError(t, err, "expected 3 unique venues, got 2")
}

func TestValidateCrawl_ConsecutiveRepeatByOrder(t *testing.T) {
	venues := candidateBars("Alpha", "Beta", "Gamma", "Delta")
	prefs := types.PlanningPreferences{NumberOfStops: 2}

	// Orders arrive shuffled; sorted by order the sequence is 0, 0, 1
	// which repeats even though the unique count matches.
	stops := []rawStop{
		{BarIndex: 1, Order: 3},
		{BarIndex: 0, Order: 1},
		{BarIndex: 0, Order: 2},
	}

	err := validateCrawl(stops, venues, prefs)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "consecutive visits to the same bar")
}

func TestValidateCrawl_MustIncludeSubstringMatch(t *testing.T) {
	venues := candidateBars("PDT NYC", "Beta")
	prefs := types.PlanningPreferences{NumberOfStops: 2, MustGoBar: "PDT"}

	err := validateCrawl(stopsFromIndices(0, 1), venues, prefs)

	assert.NoError(t, err)
}

func TestValidateCrawl_MustIncludeReverseSubstring(t *testing.T) {
	// The requested name may be longer than the listed venue name.
	venues := candidateBars("PDT", "Beta")
	prefs := types.PlanningPreferences{NumberOfStops: 2, MustGoBar: "PDT NYC"}

	err := validateCrawl(stopsFromIndices(0, 1), venues, prefs)

	assert.NoError(t, err)
}

func TestValidateCrawl_MustIncludeMissing(t *testing.T) {
	venues := candidateBars("Alpha", "Beta")
	prefs := types.PlanningPreferences{NumberOfStops: 2, MustGoBar: "Attaboy"}

	err := validateCrawl(stopsFromIndices(0, 1), venues, prefs)

	require.Error(t, err)
	assert.EqualError(t, err, `plan does not include required bar "Attaboy"`)
}
