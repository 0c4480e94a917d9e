package response_models

import "placefinder/pkg/geo"

type TravelMode string

const (
	TravelModeDriving   TravelMode = "DRIVING"
	TravelModeWalking   TravelMode = "WALKING"
	TravelModeBicycling TravelMode = "BICYCLING"
	TravelModeTransit   TravelMode = "TRANSIT"
)

func (m TravelMode) Valid() bool {
	switch m {
	case TravelModeDriving, TravelModeWalking, TravelModeBicycling, TravelModeTransit:
		return true
	}
	return false
}

// RouteStep is one maneuver of a route.
type RouteStep struct {
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
}

// Route is a normalized directions result.
type Route struct {
	Origin       geo.Coordinates `json:"origin"`
	Destination  geo.Coordinates `json:"destination"`
	TravelMode   TravelMode      `json:"travel_mode"`
	DistanceText string          `json:"distance_text"`
	DurationText string          `json:"duration_text"`
	Polyline     string          `json:"polyline"`
	Steps        []RouteStep     `json:"steps"`
}
