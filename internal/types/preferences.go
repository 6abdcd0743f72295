package types

// PlanningPreferences is the client's crawl request. Supplied once per
// request; the server never mutates it. The client re-submits with an
// updated VetoedBars set to reroll around rejected venues.
type PlanningPreferences struct {
	Neighborhood  string   `json:"neighborhood"`
	NumberOfStops int      `json:"numberOfStops"`
	Vibes         []string `json:"vibes"`
	MustGoBar     string   `json:"mustGoBar,omitempty"`
	StartTime     string   `json:"startTime,omitempty"` // 24h "HH:MM"
	EndTime       string   `json:"endTime,omitempty"`   // 24h "HH:MM"
	DayOfWeek     string   `json:"dayOfWeek,omitempty"`
	AllowTransit  bool     `json:"allowTransit,omitempty"`
	VetoedBars    []string `json:"vetoedBars,omitempty"` // place_ids
}

// BarWithVibe is a bar annotated with the vibe it was picked for.
type BarWithVibe struct {
	Bar
	Vibe        string `json:"vibe"`
	Description string `json:"description"`
}

// VibeRecommendation pairs a vibe with its best-matching bar.
type VibeRecommendation struct {
	Vibe  string      `json:"vibe"`
	Emoji string      `json:"emoji"`
	Bar   BarWithVibe `json:"bar"`
}
