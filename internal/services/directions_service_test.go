package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"placefinder/internal/clients/maps"
	"placefinder/internal/models/response_models"
	"placefinder/pkg/geo"
	"placefinder/pkg/utils"
)

func validRoute() *maps.DirectionsResult {
	return &maps.DirectionsResult{
		Origin:       geo.Coordinates{Lat: 40.7580, Lng: -73.9855},
		Destination:  geo.Coordinates{Lat: 40.7484, Lng: -73.9857},
		DistanceText: "1.1 km",
		DurationText: "15 mins",
		Polyline:     "abc123",
		Steps: []maps.DirectionsStep{
			{Instruction: "Head <b>south</b> on 7th Ave", Distance: "0.5 km", Duration: "7 mins"},
			{Instruction: "Turn <b>left</b> onto W 34th St", Distance: "0.6 km", Duration: "8 mins"},
		},
	}
}

func TestDirections_DefaultsToDriving(t *testing.T) {
	client := &fakeMapsClient{directionsResult: validRoute()}
	svc := NewDirectionsService(client, zap.NewNop())

	route, err := svc.Route(context.Background(), geo.Coordinates{Lat: 40.7580, Lng: -73.9855}, "Empire State Building", "")
	require.NoError(t, err)
	assert.Equal(t, response_models.TravelModeDriving, route.TravelMode)
	assert.Equal(t, "driving", client.directionsMode)
}

func TestDirections_AcceptsLowercaseMode(t *testing.T) {
	client := &fakeMapsClient{directionsResult: validRoute()}
	svc := NewDirectionsService(client, zap.NewNop())

	route, err := svc.Route(context.Background(), geo.Coordinates{Lat: 40.7580, Lng: -73.9855}, "Empire State Building", "walking")
	require.NoError(t, err)
	assert.Equal(t, response_models.TravelModeWalking, route.TravelMode)
	assert.Equal(t, "walking", client.directionsMode)
}

func TestDirections_RejectsUnknownMode(t *testing.T) {
	client := &fakeMapsClient{directionsResult: validRoute()}
	svc := NewDirectionsService(client, zap.NewNop())

	_, err := svc.Route(context.Background(), geo.Coordinates{Lat: 40.7580, Lng: -73.9855}, "Empire State Building", "teleport")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestDirections_RejectsInvalidOrigin(t *testing.T) {
	client := &fakeMapsClient{directionsResult: validRoute()}
	svc := NewDirectionsService(client, zap.NewNop())

	_, err := svc.Route(context.Background(), geo.Coordinates{Lat: 91, Lng: 0}, "Empire State Building", "")
	assert.ErrorIs(t, err, utils.ErrInvalidCoordinates)
}

func TestDirections_RejectsEmptyDestination(t *testing.T) {
	client := &fakeMapsClient{directionsResult: validRoute()}
	svc := NewDirectionsService(client, zap.NewNop())

	_, err := svc.Route(context.Background(), geo.Coordinates{Lat: 40.7580, Lng: -73.9855}, "   ", "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestDirections_FormatsOriginAsLatLng(t *testing.T) {
	client := &fakeMapsClient{directionsResult: validRoute()}
	svc := NewDirectionsService(client, zap.NewNop())

	_, err := svc.Route(context.Background(), geo.Coordinates{Lat: 40.7580, Lng: -73.9855}, "Empire State Building", "")
	require.NoError(t, err)
	assert.Equal(t, "40.758000,-73.985500", client.directionsOrigin)
	assert.Equal(t, "Empire State Building", client.directionsDest)
}

func TestDirections_StripsHTMLFromInstructions(t *testing.T) {
	client := &fakeMapsClient{directionsResult: validRoute()}
	svc := NewDirectionsService(client, zap.NewNop())

	route, err := svc.Route(context.Background(), geo.Coordinates{Lat: 40.7580, Lng: -73.9855}, "Empire State Building", "")
	require.NoError(t, err)
	require.Len(t, route.Steps, 2)
	assert.Equal(t, "Head south on 7th Ave", route.Steps[0].Instruction)
	assert.Equal(t, "Turn left onto W 34th St", route.Steps[1].Instruction)
}

func TestDirections_ProviderStatusBecomesDirectionsError(t *testing.T) {
	client := &fakeMapsClient{
		directionsErr: &maps.StatusError{Status: "NOT_FOUND"},
	}
	svc := NewDirectionsService(client, zap.NewNop())

	_, err := svc.Route(context.Background(), geo.Coordinates{Lat: 40.7580, Lng: -73.9855}, "nowhere at all", "")
	assert.ErrorIs(t, err, utils.ErrDirectionsUnavailable)
	assert.Contains(t, err.Error(), "NOT_FOUND")
}

func TestDirections_TransportErrorIsDirectionsUnavailable(t *testing.T) {
	client := &fakeMapsClient{
		directionsErr: assert.AnError,
	}
	svc := NewDirectionsService(client, zap.NewNop())

	_, err := svc.Route(context.Background(), geo.Coordinates{Lat: 40.7580, Lng: -73.9855}, "Empire State Building", "")
	assert.ErrorIs(t, err, utils.ErrDirectionsUnavailable)
}
