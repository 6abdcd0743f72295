package bars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barhop/barhop-api/internal/types"
)

func ratingPtr(r float64) *float64 { return &r }

func barNamed(name string, rating float64, venueTypes ...string) types.Bar {
	return types.Bar{
		PlaceID:        "id-" + name,
		Name:           name,
		Rating:         ratingPtr(rating),
		BusinessStatus: types.BusinessStatusOperational,
		Types:          venueTypes,
	}
}

func TestFilterAdultVenues_RatingThreshold(t *testing.T) {
	venues := []types.Bar{
		barNamed("Test Bar", 3.0, "bar"),
		barNamed("Good Bar", 4.0, "bar"),
	}

	filtered := FilterAdultVenues(venues)

	require.Len(t, filtered, 1)
	assert.Equal(t, "Good Bar", filtered[0].Name)
}

func TestFilterAdultVenues_MissingRating(t *testing.T) {
	noRating := types.Bar{
		Name:           "Mystery Bar",
		BusinessStatus: types.BusinessStatusOperational,
		Types:          []string{"bar"},
	}

	filtered := FilterAdultVenues([]types.Bar{noRating})

	assert.Empty(t, filtered)
}

func TestFilterAdultVenues_BusinessStatus(t *testing.T) {
	closed := barNamed("Shuttered Tavern", 4.5, "bar")
	closed.BusinessStatus = types.BusinessStatusClosedPermanently
	temporary := barNamed("Renovating Pub", 4.2, "bar")
	temporary.BusinessStatus = types.BusinessStatusClosedTemporarily

	filtered := FilterAdultVenues([]types.Bar{closed, temporary, barNamed("Open Bar", 4.0, "bar")})

	require.Len(t, filtered, 1)
	assert.Equal(t, "Open Bar", filtered[0].Name)
}

func TestFilterAdultVenues_AdultKeywords(t *testing.T) {
	venues := []types.Bar{
		barNamed("Gentlemen's Club Deluxe", 4.8, "bar"),
		barNamed("XXX Lounge", 4.9, "bar"),
		barNamed("Cabaret Royale", 4.7, "night_club"),
		barNamed("The Exotic Bird", 4.6, "bar"),
		barNamed("Honest Pub", 4.0, "bar"),
	}

	filtered := FilterAdultVenues(venues)

	// High ratings do not rescue denylisted names
	require.Len(t, filtered, 1)
	assert.Equal(t, "Honest Pub", filtered[0].Name)
}

func TestFilterAdultVenues_RestaurantsNeedBarTag(t *testing.T) {
	restaurant := barNamed("Pasta Place", 4.5, "restaurant", "food")
	barRestaurant := barNamed("Gastro Taproom", 4.4, "restaurant", "bar")
	cafe := barNamed("Morning Cafe", 4.6, "cafe")
	nightclub := barNamed("Night Spot", 4.1, "night_club", "food")

	filtered := FilterAdultVenues([]types.Bar{restaurant, barRestaurant, cafe, nightclub})

	names := make([]string, 0, len(filtered))
	for _, bar := range filtered {
		names = append(names, bar.Name)
	}
	assert.ElementsMatch(t, []string{"Gastro Taproom", "Night Spot"}, names)
}

func TestFilterAdultVenues_UntypedVenuePasses(t *testing.T) {
	untyped := types.Bar{
		Name:           "Corner Bar",
		Rating:         ratingPtr(4.0),
		BusinessStatus: types.BusinessStatusOperational,
	}

	filtered := FilterAdultVenues([]types.Bar{untyped})

	assert.Len(t, filtered, 1)
}
