package request_models

import "placefinder/pkg/geo"

// DirectionsRequest carries an origin point and a destination that may be
// either a place name or a "lat,lng" pair; the provider geocodes free text
// on its side.
type DirectionsRequest struct {
	Origin      geo.Coordinates `json:"origin" binding:"required"`
	Destination string          `json:"destination" binding:"required"`
	TravelMode  string          `json:"travel_mode,omitempty"`
}
