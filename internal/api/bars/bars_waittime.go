package bars

import "strings"

// Wait-time labels surfaced on a bar after review enrichment.
const (
	WaitMinimal     = "Minimal wait"
	WaitModerate    = "Moderately busy"
	WaitLong        = "Long waits"
	WaitVeryCrowded = "Very crowded"
	WaitUnavailable = "Wait info unavailable"
)

var waitKeywords = []string{
	"wait", "line", "busy", "crowded", "packed", "full", "minutes", "hour",
}

// ClassifyWaitTime maps a venue's review texts to a coarse wait label.
// Only the first review containing a crowd keyword is inspected, not an
// aggregate across reviews; that first-match behavior is deliberate and
// relied upon by callers.
func ClassifyWaitTime(reviews []string) string {
	for _, review := range reviews {
		lower := strings.ToLower(review)
		if !containsAny(lower, waitKeywords) {
			continue
		}
		switch {
		case strings.Contains(lower, "no wait"),
			strings.Contains(lower, "no line"),
			strings.Contains(lower, "walked right in"):
			return WaitMinimal
		case strings.Contains(lower, "packed"),
			strings.Contains(lower, "very crowded"),
			strings.Contains(lower, "shoulder to shoulder"):
			return WaitVeryCrowded
		case strings.Contains(lower, "hour"),
			strings.Contains(lower, "long wait"),
			strings.Contains(lower, "long line"):
			return WaitLong
		default:
			return WaitModerate
		}
	}
	return WaitUnavailable
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
