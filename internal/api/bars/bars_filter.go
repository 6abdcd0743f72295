package bars

import (
	"strings"

	"github.com/barhop/barhop-api/internal/types"
)

var excludedKeywords = []string{
	"strip", "adult", "gentlemen", "topless", "exotic", "lingerie", "massage parlor",
	"escort", "xxx", "nude", "dancers", "cabaret",
}

var restaurantTypes = []string{
	"restaurant", "meal_takeaway", "meal_delivery", "food", "cafe", "bakery",
}

var barTypes = []string{"bar", "liquor_store", "night_club"}

// FilterAdultVenues keeps operational venues rated 3.5 or better whose
// name carries no adult-entertainment keyword, dropping
// restaurant-type venues unless they also carry a bar-family tag.
func FilterAdultVenues(venues []types.Bar) []types.Bar {
	filtered := make([]types.Bar, 0, len(venues))
	for _, venue := range venues {
		if venue.BusinessStatus != types.BusinessStatusOperational {
			continue
		}
		if venue.Rating == nil || *venue.Rating < 3.5 {
			continue
		}
		if nameContainsAny(venue.Name, excludedKeywords) {
			continue
		}
		if !hasAnyType(venue.Types, barTypes) && hasAnyType(venue.Types, restaurantTypes) {
			continue
		}
		filtered = append(filtered, venue)
	}
	return filtered
}

func nameContainsAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func hasAnyType(venueTypes, wanted []string) bool {
	for _, t := range venueTypes {
		for _, w := range wanted {
			if t == w {
				return true
			}
		}
	}
	return false
}
