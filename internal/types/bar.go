package types

// Business status values returned by the places search for a venue.
const (
	BusinessStatusOperational       = "OPERATIONAL"
	BusinessStatusClosedTemporarily = "CLOSED_TEMPORARILY"
	BusinessStatusClosedPermanently = "CLOSED_PERMANENTLY"
)

// Location is a latitude/longitude pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geometry wraps the venue coordinate as it arrives on the wire.
type Geometry struct {
	Location Location `json:"location"`
}

// Photo holds a reference usable against the place-photos endpoint.
type Photo struct {
	PhotoReference string `json:"photo_reference"`
}

// Bar is a nightlife venue sourced from the external places directory.
// Field names mirror the places API response so search results
// unmarshal directly. Immutable during a request, never persisted.
type Bar struct {
	PlaceID        string   `json:"place_id"`
	Name           string   `json:"name"`
	Rating         *float64 `json:"rating,omitempty"`
	PriceLevel     *int     `json:"price_level,omitempty"`
	Vicinity       string   `json:"vicinity"`
	BusinessStatus string   `json:"business_status,omitempty"`
	Types          []string `json:"types,omitempty"`
	Geometry       Geometry `json:"geometry"`
	Photos         []Photo  `json:"photos,omitempty"`
	// WaitInfo is a coarse wait-time label derived from recent reviews,
	// filled in during enrichment. Empty until then.
	WaitInfo string `json:"waitInfo,omitempty"`
}

// WalkingDistance is the human-readable result of a distance-matrix
// lookup between two points.
type WalkingDistance struct {
	Distance string `json:"distance"`
	Duration string `json:"duration"`
}
