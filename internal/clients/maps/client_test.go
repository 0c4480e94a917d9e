package maps

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"placefinder/pkg/geo"
)

func TestTextSearch(t *testing.T) {
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/place/textsearch/json" {
			t.Errorf("expected path /place/textsearch/json; got %s", r.URL.Path)
		}
		gotQuery = map[string]string{
			"query":    r.URL.Query().Get("query"),
			"key":      r.URL.Query().Get("key"),
			"location": r.URL.Query().Get("location"),
			"radius":   r.URL.Query().Get("radius"),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "OK",
			"results": []map[string]interface{}{
				{
					"place_id":          "p1",
					"name":              "Blue Bottle",
					"formatted_address": "1 Main St",
					"geometry":          map[string]interface{}{"location": map[string]float64{"lat": 40.7, "lng": -73.9}},
					"rating":            4.5,
				},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret")
	bias := &geo.Coordinates{Lat: 40.7580, Lng: -73.9855}

	results, err := client.TextSearch(context.Background(), "coffee shops", bias, 50000)
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "p1", results[0].PlaceID)
	assert.Equal(t, "Blue Bottle", results[0].Name)
	assert.NotNil(t, results[0].Rating)
	assert.Equal(t, 4.5, *results[0].Rating)
	assert.Nil(t, results[0].PriceLevel)

	assert.Equal(t, "coffee shops", gotQuery["query"])
	assert.Equal(t, "secret", gotQuery["key"])
	assert.Equal(t, "40.758000,-73.985500", gotQuery["location"])
	assert.Equal(t, "50000", gotQuery["radius"])
}

func TestTextSearch_ZeroResultsIsEmptyAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "ZERO_RESULTS"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k")
	results, err := client.TextSearch(context.Background(), "nothing here", nil, 0)
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestTextSearch_ProviderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":        "OVER_QUERY_LIMIT",
			"error_message": "quota exceeded",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k")
	_, err := client.TextSearch(context.Background(), "coffee", nil, 0)

	var statusErr *StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "OVER_QUERY_LIMIT", statusErr.Status)
}

func TestPlaceDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/place/details/json" {
			t.Errorf("expected path /place/details/json; got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("place_id"); got != "p1" {
			t.Errorf("place_id = %q; want p1", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "OK",
			"result": map[string]interface{}{
				"place_id":                   "p1",
				"rating":                     4.2,
				"price_level":                2,
				"international_phone_number": "+1 212-555-0100",
				"opening_hours":              map[string]interface{}{"weekday_text": []string{"Monday: 8AM-6PM"}},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k")
	detail, err := client.PlaceDetails(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, 4.2, *detail.Rating)
	assert.Equal(t, 2, *detail.PriceLevel)
	assert.Equal(t, "+1 212-555-0100", *detail.Phone)
	assert.Equal(t, []string{"Monday: 8AM-6PM"}, detail.WeekdayText())
}

func TestDirections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("mode"); got != "walking" {
			t.Errorf("mode = %q; want walking", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "OK",
			"routes": []map[string]interface{}{
				{
					"overview_polyline": map[string]string{"points": "abc123"},
					"legs": []map[string]interface{}{
						{
							"distance":       map[string]string{"text": "1.2 km"},
							"duration":       map[string]string{"text": "15 mins"},
							"start_location": map[string]float64{"lat": 40.75, "lng": -73.98},
							"end_location":   map[string]float64{"lat": 40.78, "lng": -73.96},
							"steps": []map[string]interface{}{
								{
									"html_instructions": "Head <b>north</b>",
									"distance":          map[string]string{"text": "200 m"},
									"duration":          map[string]string{"text": "3 mins"},
								},
							},
						},
					},
				},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k")
	result, err := client.Directions(context.Background(), "40.75,-73.98", "Central Park", "walking")
	assert.NoError(t, err)
	assert.Equal(t, "1.2 km", result.DistanceText)
	assert.Equal(t, "15 mins", result.DurationText)
	assert.Equal(t, "abc123", result.Polyline)
	assert.Len(t, result.Steps, 1)
	assert.Equal(t, 40.78, result.Destination.Lat)
}

func TestDirections_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "NOT_FOUND"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k")
	_, err := client.Directions(context.Background(), "40.75,-73.98", "Nonexistent Place XYZ123", "driving")

	var statusErr *StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "NOT_FOUND", statusErr.Status)
}

func TestGeocode_MissIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "ZERO_RESULTS"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k")
	coords, err := client.Geocode(context.Background(), "gibberish")
	assert.NoError(t, err)
	assert.Nil(t, coords)
}

func TestPlaceURL(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/maps/place/?q=place_id:p1",
		PlaceURL("p1", geo.Coordinates{}))
	assert.Equal(t,
		"https://www.google.com/maps/@40.758000,-73.985500,15z",
		PlaceURL("", geo.Coordinates{Lat: 40.7580, Lng: -73.9855}))
}
