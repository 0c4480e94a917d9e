package response_models

import "placefinder/pkg/geo"

// Location is a normalized point of interest. Provider fields that were
// absent stay nil rather than collapsing to zero values; a missing rating
// and a zero-star rating are different things.
type Location struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	Coordinates    geo.Coordinates `json:"coordinates"`
	Rating         *float64        `json:"rating,omitempty"`
	PriceLevel     *int            `json:"price_level,omitempty"`
	OpeningHours   []string        `json:"opening_hours,omitempty"`
	Phone          *string         `json:"phone,omitempty"`
	Website        string          `json:"website,omitempty"`
	DistanceMeters *float64        `json:"distance_meters,omitempty"`
	ProviderURL    string          `json:"provider_url"`
}

// ResultSet is the curated output of one pipeline run. Locations are in
// rank order and never longer than the configured maximum.
type ResultSet struct {
	Locations []Location       `json:"locations"`
	MapCenter geo.Coordinates  `json:"map_center"`
	MapBounds *geo.BoundingBox `json:"map_bounds,omitempty"`
	QueryEcho SearchIntent     `json:"query_echo"`
}
