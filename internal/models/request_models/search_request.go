package request_models

import "placefinder/pkg/geo"

type SearchRequest struct {
	Query        string           `json:"query" binding:"required"`
	UserLocation *geo.Coordinates `json:"user_location,omitempty"`
}
