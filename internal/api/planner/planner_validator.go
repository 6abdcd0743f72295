package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/barhop/barhop-api/internal/types"
)

// validateCrawl enforces the structural invariants on a candidate plan
// before it is returned to the client. Checks run in order and the
// first failure rejects the whole plan; the caller does not retry.
//
//  1. every stop's bar index resolves into the candidate list
//  2. the count of distinct referenced bars equals the requested stops
//  3. no two consecutive stops (by order) reference the same bar
//  4. a must-include bar, when requested, appears in the plan
func validateCrawl(stops []rawStop, venues []types.Bar, preferences types.PlanningPreferences) error {
	for _, stop := range stops {
		if stop.BarIndex < 0 || stop.BarIndex >= len(venues) {
			return fmt.Errorf("stop %d references bar index %d, but only %d bars are available",
				stop.Order, stop.BarIndex, len(venues))
		}
	}

	unique := make(map[int]struct{}, len(stops))
	for _, stop := range stops {
		unique[stop.BarIndex] = struct{}{}
	}
	if len(unique) != preferences.NumberOfStops {
		return fmt.Errorf("expected %d unique venues, got %d", preferences.NumberOfStops, len(unique))
	}

	ordered := make([]rawStop, len(stops))
	copy(ordered, stops)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })
	for i := 1; i < len(ordered); i++ {
		if ordered[i].BarIndex == ordered[i-1].BarIndex {
			return fmt.Errorf("stops %d and %d are consecutive visits to the same bar",
				ordered[i-1].Order, ordered[i].Order)
		}
	}

	if preferences.MustGoBar != "" {
		wanted := strings.ToLower(preferences.MustGoBar)
		found := false
		for index := range unique {
			name := strings.ToLower(venues[index].Name)
			if strings.Contains(name, wanted) || strings.Contains(wanted, name) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("plan does not include required bar %q", preferences.MustGoBar)
		}
	}

	return nil
}
