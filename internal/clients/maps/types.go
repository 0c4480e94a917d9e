package maps

// Wire types for the Google Maps Web Service API. Only the fields the
// pipeline consumes are decoded.

const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geometry struct {
	Location latLng `json:"location"`
}

type openingHours struct {
	WeekdayText []string `json:"weekday_text,omitempty"`
}

// PlaceResult is one candidate from a text search.
type PlaceResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Geometry         geometry `json:"geometry"`
	Rating           *float64 `json:"rating,omitempty"`
	PriceLevel       *int     `json:"price_level,omitempty"`
}

type textSearchResponse struct {
	Results      []PlaceResult `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

// PlaceDetail carries the enrichment fields a text search does not
// reliably return.
type PlaceDetail struct {
	PlaceID      string        `json:"place_id"`
	Rating       *float64      `json:"rating,omitempty"`
	PriceLevel   *int          `json:"price_level,omitempty"`
	OpeningHours *openingHours `json:"opening_hours,omitempty"`
	Phone        *string       `json:"international_phone_number,omitempty"`
	Website      string        `json:"website,omitempty"`
}

func (d *PlaceDetail) WeekdayText() []string {
	if d == nil || d.OpeningHours == nil {
		return nil
	}
	return d.OpeningHours.WeekdayText
}

type placeDetailsResponse struct {
	Result       PlaceDetail `json:"result"`
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message,omitempty"`
}

type textValue struct {
	Text string `json:"text"`
}

type routeStep struct {
	HTMLInstructions string    `json:"html_instructions"`
	Distance         textValue `json:"distance"`
	Duration         textValue `json:"duration"`
}

type routeLeg struct {
	Distance      textValue `json:"distance"`
	Duration      textValue `json:"duration"`
	StartLocation latLng    `json:"start_location"`
	EndLocation   latLng    `json:"end_location"`
	Steps         []routeStep `json:"steps"`
}

type route struct {
	Legs             []routeLeg `json:"legs"`
	OverviewPolyline struct {
		Points string `json:"points"`
	} `json:"overview_polyline"`
}

type directionsResponse struct {
	Routes       []route `json:"routes"`
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

type geocodeResult struct {
	Geometry         geometry `json:"geometry"`
	FormattedAddress string   `json:"formatted_address"`
}

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
	Status  string          `json:"status"`
}
