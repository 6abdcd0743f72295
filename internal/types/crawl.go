package types

import "github.com/google/uuid"

// Visit types for a crawl stop. A "putNameDown" stop queues for a
// table and moves on; a "return" stop comes back to a queued venue.
const (
	VisitTypeFull        = "full"
	VisitTypePutNameDown = "putNameDown"
	VisitTypeReturn      = "return"
)

// Commute methods between stops.
const (
	CommuteWalk   = "walk"
	CommuteSubway = "subway"
	CommuteBus    = "bus"
	CommuteTaxi   = "taxi"
)

// Commute describes how to get from one stop to the next.
type Commute struct {
	Method       string `json:"method"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions,omitempty"`
}

// CrawlStop is one venue on the itinerary.
type CrawlStop struct {
	Bar           Bar      `json:"bar"`
	Order         int      `json:"order"`
	Reasoning     string   `json:"reasoning"`
	EstimatedTime string   `json:"estimatedTime"`
	VisitType     string   `json:"visitType,omitempty"`
	CommuteToNext *Commute `json:"commuteToNext,omitempty"`
}

// BarCrawl is an ordered multi-venue itinerary for one evening,
// assembled fresh per request from the model's output.
type BarCrawl struct {
	ID                 uuid.UUID   `json:"id"`
	Stops              []CrawlStop `json:"stops"`
	TotalEstimatedTime string      `json:"totalEstimatedTime"`
	Overview           string      `json:"overview"`
}
