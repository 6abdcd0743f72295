package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/barhop/barhop-api/internal/types"
)

const systemInstruction = "You are a local nightlife expert who creates strategic bar crawl plans."

// dayOfWeekNotes feeds the model a behavioral hint for the chosen
// night. Static lookup, lowercase weekday keys.
var dayOfWeekNotes = map[string]string{
	"monday":    "Most bars are quiet and some are closed; industry night at a few spots.",
	"tuesday":   "Quiet night, easy to get into anywhere, some specials.",
	"wednesday": "Midweek pickup; popular spots start filling after 8 PM.",
	"thursday":  "After-work crowds run late; treat it like a softer Friday.",
	"friday":    "Expect lines at popular spots after 9 PM; name-down strategy pays off.",
	"saturday":  "Busiest night of the week; plan around waits everywhere.",
	"sunday":    "Laid-back crowds; many bars wind down early.",
}

// formatTimeDisplay converts a 24-hour "HH:MM" string to a 12-hour
// display form. Unparseable input is passed through untouched.
func formatTimeDisplay(t string) string {
	parsed, err := time.Parse("15:04", t)
	if err != nil {
		return t
	}
	return parsed.Format("3:04 PM")
}

// buildBarList renders the numbered candidate list embedded in prompts.
func buildBarList(venues []types.Bar) string {
	lines := make([]string, 0, len(venues))
	for i, bar := range venues {
		rating := "N/A"
		if bar.Rating != nil {
			rating = fmt.Sprintf("%.1f", *bar.Rating)
		}
		price := "N/A"
		if bar.PriceLevel != nil && *bar.PriceLevel > 0 {
			price = strings.Repeat("$", *bar.PriceLevel)
		}
		line := fmt.Sprintf("%d. %s - Rating: %s, Price: %s, Address: %s",
			i+1, bar.Name, rating, price, bar.Vicinity)
		if bar.WaitInfo != "" {
			line += fmt.Sprintf(", Wait: %s", bar.WaitInfo)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// buildCrawlPrompt assembles the full planning instruction block.
// Deterministic given deterministic inputs.
func buildCrawlPrompt(preferences types.PlanningPreferences, venues []types.Bar) string {
	var b strings.Builder

	b.WriteString("You are a local nightlife expert creating the perfect bar crawl.\n\n")
	fmt.Fprintf(&b, "NEIGHBORHOOD: %s\n", preferences.Neighborhood)
	fmt.Fprintf(&b, "NUMBER OF STOPS: %d\n", preferences.NumberOfStops)
	fmt.Fprintf(&b, "PREFERRED VIBES: %s\n", strings.Join(preferences.Vibes, ", "))

	if preferences.DayOfWeek != "" {
		note, ok := dayOfWeekNotes[strings.ToLower(preferences.DayOfWeek)]
		if ok {
			fmt.Fprintf(&b, "DAY OF WEEK: %s (note: %s)\n", preferences.DayOfWeek, note)
		} else {
			fmt.Fprintf(&b, "DAY OF WEEK: %s\n", preferences.DayOfWeek)
		}
	}
	if preferences.StartTime != "" && preferences.EndTime != "" {
		fmt.Fprintf(&b, "TIME WINDOW: %s to %s\n",
			formatTimeDisplay(preferences.StartTime), formatTimeDisplay(preferences.EndTime))
	}
	if preferences.AllowTransit {
		b.WriteString("TRANSIT: subway, bus, or taxi between stops is fine when it beats walking.\n")
	} else {
		b.WriteString("TRANSIT: walking only; every stop must be walkable from the last.\n")
	}
	if preferences.MustGoBar != "" {
		fmt.Fprintf(&b, "MUST INCLUDE: %s\n", preferences.MustGoBar)
	}

	fmt.Fprintf(&b, "\nAvailable bars:\n%s\n", buildBarList(venues))

	fmt.Fprintf(&b, `
Create an optimal bar crawl route with %d stops. Consider:
- Walking distance between venues
- Crowd buildup timing (start quieter, build energy)
- Preferred vibes
- Strategic planning (e.g., "Put your name down at [busy bar], then hit a nearby spot while you wait")

Each stop has a visitType: "full" for a normal visit, "putNameDown" for a quick stop to get on a list before moving on, and "return" for coming back to a bar you queued at earlier. A "return" stop may reuse the bar of an earlier "putNameDown" stop, but never schedule the same bar twice in a row.
`, preferences.NumberOfStops)

	if preferences.MustGoBar != "" {
		fmt.Fprintf(&b, "\nIMPORTANT: You must include %q if it exists in the list. Do not skip it. The crawl is wrong without %q.\n",
			preferences.MustGoBar, preferences.MustGoBar)
	}

	b.WriteString(`
Respond in JSON format:
{
  "crawl": {
    "stops": [
      {
        "barIndex": 0,
        "order": 1,
        "reasoning": "Start here because...",
        "estimatedTime": "8:00-9:30 PM",
        "visitType": "full",
        "commuteToNext": {
          "method": "walk",
          "duration": "5 min",
          "instructions": "Optional, e.g. Take L train 2 stops"
        }
      }
    ],
    "totalEstimatedTime": "4-5 hours",
    "overview": "A strategic crawl that begins..."
  }
}
barIndex is zero-based into the available bars list above. Make the reasoning engaging and strategic. Focus on timing, logistics, and vibe progression.`)

	return b.String()
}
