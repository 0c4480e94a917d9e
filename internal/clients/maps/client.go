package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"placefinder/pkg/geo"
)

// StatusError is a non-OK answer from the provider. Transport worked; the
// provider refused or failed the request.
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("maps api status %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("maps api status %s", e.Status)
}

// Client calls the Google Maps Web Service API. All requests share one
// bounded http.Client; the API key is appended to every call.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out interface{}) error {
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("maps api http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("maps api bad status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("maps api decode: %w", err)
	}
	return nil
}

// TextSearch runs a free-text place search, optionally biased toward a
// point within radiusMeters. ZERO_RESULTS is a valid empty answer.
func (c *Client) TextSearch(ctx context.Context, query string, bias *geo.Coordinates, radiusMeters int) ([]PlaceResult, error) {
	q := url.Values{}
	q.Set("query", query)
	if bias != nil {
		q.Set("location", fmt.Sprintf("%f,%f", bias.Lat, bias.Lng))
		q.Set("radius", fmt.Sprintf("%d", radiusMeters))
	}

	var payload textSearchResponse
	if err := c.get(ctx, "/place/textsearch/json", q, &payload); err != nil {
		return nil, err
	}

	switch payload.Status {
	case statusOK:
		return payload.Results, nil
	case statusZeroResults:
		return nil, nil
	default:
		return nil, &StatusError{Status: payload.Status, Message: payload.ErrorMessage}
	}
}

// PlaceDetails fetches the enrichment fields for one place.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (*PlaceDetail, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", "place_id,rating,price_level,opening_hours,international_phone_number,website")

	var payload placeDetailsResponse
	if err := c.get(ctx, "/place/details/json", q, &payload); err != nil {
		return nil, err
	}

	if payload.Status != statusOK {
		return nil, &StatusError{Status: payload.Status, Message: payload.ErrorMessage}
	}
	return &payload.Result, nil
}

// DirectionsStep is one maneuver; the instruction may contain HTML.
type DirectionsStep struct {
	Instruction string
	Distance    string
	Duration    string
}

// DirectionsResult is the first route/leg of a directions answer.
type DirectionsResult struct {
	Origin       geo.Coordinates
	Destination  geo.Coordinates
	DistanceText string
	DurationText string
	Polyline     string
	Steps        []DirectionsStep
}

// Directions requests a route. The destination may be free text; the
// provider geocodes it. A non-OK status or an empty route list comes back
// as a StatusError.
func (c *Client) Directions(ctx context.Context, origin, destination, mode string) (*DirectionsResult, error) {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("mode", mode)

	var payload directionsResponse
	if err := c.get(ctx, "/directions/json", q, &payload); err != nil {
		return nil, err
	}

	if payload.Status != statusOK {
		return nil, &StatusError{Status: payload.Status, Message: payload.ErrorMessage}
	}
	if len(payload.Routes) == 0 || len(payload.Routes[0].Legs) == 0 {
		return nil, &StatusError{Status: "NO_ROUTES"}
	}

	r := payload.Routes[0]
	leg := r.Legs[0]

	steps := make([]DirectionsStep, 0, len(leg.Steps))
	for _, s := range leg.Steps {
		steps = append(steps, DirectionsStep{
			Instruction: s.HTMLInstructions,
			Distance:    s.Distance.Text,
			Duration:    s.Duration.Text,
		})
	}

	return &DirectionsResult{
		Origin:       geo.Coordinates{Lat: leg.StartLocation.Lat, Lng: leg.StartLocation.Lng},
		Destination:  geo.Coordinates{Lat: leg.EndLocation.Lat, Lng: leg.EndLocation.Lng},
		DistanceText: leg.Distance.Text,
		DurationText: leg.Duration.Text,
		Polyline:     r.OverviewPolyline.Points,
		Steps:        steps,
	}, nil
}

// Geocode resolves an address to coordinates. A miss is (nil, nil); the
// callers treat geocoding as best-effort.
func (c *Client) Geocode(ctx context.Context, address string) (*geo.Coordinates, error) {
	q := url.Values{}
	q.Set("address", address)

	var payload geocodeResponse
	if err := c.get(ctx, "/geocode/json", q, &payload); err != nil {
		return nil, err
	}

	if payload.Status != statusOK || len(payload.Results) == 0 {
		return nil, nil
	}

	loc := payload.Results[0].Geometry.Location
	return &geo.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// PlaceURL builds the user-facing map link for a place.
func PlaceURL(placeID string, coords geo.Coordinates) string {
	if placeID != "" {
		return "https://www.google.com/maps/place/?q=place_id:" + placeID
	}
	return fmt.Sprintf("https://www.google.com/maps/@%f,%f,15z", coords.Lat, coords.Lng)
}
