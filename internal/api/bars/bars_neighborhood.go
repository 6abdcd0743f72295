package bars

import (
	"strings"

	"github.com/barhop/barhop-api/internal/types"
)

// neighborhoodExclusions maps a known neighborhood to keywords that mark
// a venue as belonging somewhere else. The nearby search ignores tight
// boundaries, so results for "east village" routinely include Midtown
// venues. Sample data for a handful of NYC neighborhoods; a textual
// heuristic, not geometric containment, so it can over- and
// under-exclude.
var neighborhoodExclusions = map[string][]string{
	"east village": {
		"midtown", "chelsea", "hell's kitchen", "times square",
		"upper east side", "upper west side", "financial district",
	},
	"west village": {
		"midtown", "hell's kitchen", "times square",
		"upper east side", "upper west side", "financial district",
	},
	"lower east side": {
		"midtown", "chelsea", "times square",
		"upper east side", "upper west side",
	},
	"greenwich village": {
		"midtown", "times square", "upper east side", "upper west side",
	},
	"williamsburg": {
		"midtown", "manhattan", "greenpoint", "bushwick",
	},
	"midtown": {
		"east village", "west village", "lower east side", "williamsburg",
	},
}

// FilterByNeighborhood drops venues whose name or address mentions a
// keyword foreign to the requested neighborhood. Unknown neighborhoods
// have no exclusion list and pass everything through.
func FilterByNeighborhood(venues []types.Bar, neighborhood string) []types.Bar {
	exclusions, ok := neighborhoodExclusions[strings.ToLower(strings.TrimSpace(neighborhood))]
	if !ok {
		return venues
	}

	filtered := make([]types.Bar, 0, len(venues))
	for _, venue := range venues {
		name := strings.ToLower(venue.Name)
		address := strings.ToLower(venue.Vicinity)
		foreign := false
		for _, keyword := range exclusions {
			if strings.Contains(name, keyword) || strings.Contains(address, keyword) {
				foreign = true
				break
			}
		}
		if !foreign {
			filtered = append(filtered, venue)
		}
	}
	return filtered
}
