package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"placefinder/internal/models/response_models"
	"placefinder/pkg/geo"
)

func makeLocations(ids ...string) []response_models.Location {
	out := make([]response_models.Location, 0, len(ids))
	for i, id := range ids {
		out = append(out, response_models.Location{
			ID:   id,
			Name: "Place " + id,
			Coordinates: geo.Coordinates{
				Lat: 40.70 + float64(i)*0.01,
				Lng: -74.00 + float64(i)*0.01,
			},
		})
	}
	return out
}

var testIntent = response_models.SearchIntent{
	SearchTerm: "coffee shops",
	QueryType:  response_models.QueryTypeGeneral,
}

func TestCurate_DedupesFirstSeen(t *testing.T) {
	svc := NewCuratorService(5, false, zap.NewNop())
	locations := makeLocations("a", "b", "a", "c", "b")

	result := svc.Curate(testIntent, locations, nil)

	ids := make([]string, 0, len(result.Locations))
	for _, loc := range result.Locations {
		ids = append(ids, loc.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestCurate_TruncatesAfterDedup(t *testing.T) {
	svc := NewCuratorService(5, false, zap.NewNop())

	// 12 distinct locations with duplicates of the first two mixed in.
	var locations []response_models.Location
	for i := 0; i < 12; i++ {
		locations = append(locations, makeLocations(fmt.Sprintf("id-%d", i))...)
		if i == 2 {
			locations = append(locations, makeLocations("id-0", "id-1")...)
		}
	}

	result := svc.Curate(testIntent, locations, nil)
	assert.Len(t, result.Locations, 5)
	for i, loc := range result.Locations {
		assert.Equal(t, fmt.Sprintf("id-%d", i), loc.ID)
	}
}

func TestCurate_NoDistanceWithoutUserLocation(t *testing.T) {
	svc := NewCuratorService(5, false, zap.NewNop())

	result := svc.Curate(testIntent, makeLocations("a", "b"), nil)
	for _, loc := range result.Locations {
		assert.Nil(t, loc.DistanceMeters)
	}
}

func TestCurate_DistanceAnnotatedWithUserLocation(t *testing.T) {
	svc := NewCuratorService(5, false, zap.NewNop())
	user := geo.Coordinates{Lat: 40.7580, Lng: -73.9855}

	result := svc.Curate(testIntent, makeLocations("a", "b", "c"), &user)
	for _, loc := range result.Locations {
		assert.NotNil(t, loc.DistanceMeters)
		assert.GreaterOrEqual(t, *loc.DistanceMeters, 0.0)
	}
}

func TestCurate_PreservesProviderOrderByDefault(t *testing.T) {
	svc := NewCuratorService(5, false, zap.NewNop())

	// User sits closest to the LAST location; default mode must not
	// reorder anything.
	user := geo.Coordinates{Lat: 40.74, Lng: -73.96}
	result := svc.Curate(testIntent, makeLocations("a", "b", "c", "d"), &user)

	ids := make([]string, 0, len(result.Locations))
	for _, loc := range result.Locations {
		ids = append(ids, loc.ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids)
}

func TestCurate_OptInDistanceSort(t *testing.T) {
	svc := NewCuratorService(5, true, zap.NewNop())

	user := geo.Coordinates{Lat: 40.74, Lng: -73.96}
	result := svc.Curate(testIntent, makeLocations("a", "b", "c", "d"), &user)

	for i := 1; i < len(result.Locations); i++ {
		assert.LessOrEqual(t,
			*result.Locations[i-1].DistanceMeters,
			*result.Locations[i].DistanceMeters)
	}
}

func TestCurate_MapFrameCoversResults(t *testing.T) {
	svc := NewCuratorService(5, false, zap.NewNop())

	result := svc.Curate(testIntent, makeLocations("a", "b", "c"), nil)
	assert.NotNil(t, result.MapBounds)
	assert.GreaterOrEqual(t, result.MapCenter.Lat, result.MapBounds.Southwest.Lat)
	assert.LessOrEqual(t, result.MapCenter.Lat, result.MapBounds.Northeast.Lat)
}

func TestCurate_EmptySetFallsBackToUserLocation(t *testing.T) {
	svc := NewCuratorService(5, false, zap.NewNop())
	user := geo.Coordinates{Lat: 40.7580, Lng: -73.9855}

	result := svc.Curate(testIntent, nil, &user)
	assert.Empty(t, result.Locations)
	assert.Equal(t, user, result.MapCenter)
	assert.Nil(t, result.MapBounds)
}

func TestCurate_EmptySetNoUserLocation(t *testing.T) {
	svc := NewCuratorService(5, false, zap.NewNop())

	result := svc.Curate(testIntent, nil, nil)
	assert.Empty(t, result.Locations)
	assert.Equal(t, geo.Coordinates{}, result.MapCenter)
	assert.Nil(t, result.MapBounds)
}

func TestCurate_EchoesIntent(t *testing.T) {
	svc := NewCuratorService(5, false, zap.NewNop())

	result := svc.Curate(testIntent, makeLocations("a"), nil)
	assert.Equal(t, testIntent, result.QueryEcho)
}
