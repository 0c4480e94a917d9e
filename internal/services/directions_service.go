package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"placefinder/internal/clients/maps"
	"placefinder/internal/models/response_models"
	"placefinder/pkg/geo"
	"placefinder/pkg/utils"
)

type DirectionsServiceInterface interface {
	Route(ctx context.Context, origin geo.Coordinates, destination string, mode string) (*response_models.Route, error)
}

type DirectionsService struct {
	mapsClient MapsAPI
	logger     *zap.Logger
}

func NewDirectionsService(mapsClient MapsAPI, logger *zap.Logger) DirectionsServiceInterface {
	return &DirectionsService{
		mapsClient: mapsClient,
		logger:     logger,
	}
}

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// Route requests one route. It never approximates: an unreachable
// destination or provider failure is an error carrying the provider's raw
// status for the logs.
func (s *DirectionsService) Route(ctx context.Context, origin geo.Coordinates, destination string, mode string) (*response_models.Route, error) {
	if !origin.Valid() {
		return nil, utils.ErrInvalidCoordinates
	}
	if strings.TrimSpace(destination) == "" {
		return nil, utils.ErrInvalidInput
	}

	travelMode, err := parseTravelMode(mode)
	if err != nil {
		return nil, err
	}

	result, err := s.mapsClient.Directions(ctx,
		fmt.Sprintf("%f,%f", origin.Lat, origin.Lng),
		destination,
		strings.ToLower(string(travelMode)))
	if err != nil {
		var statusErr *maps.StatusError
		if errors.As(err, &statusErr) {
			s.logger.Warn("directions request rejected by provider",
				zap.String("destination", destination),
				zap.String("provider_status", statusErr.Status))
			return nil, utils.DirectionsError(statusErr.Status)
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDirectionsUnavailable, err)
	}

	steps := make([]response_models.RouteStep, 0, len(result.Steps))
	for _, step := range result.Steps {
		steps = append(steps, response_models.RouteStep{
			Instruction: stripHTML(step.Instruction),
			Distance:    step.Distance,
			Duration:    step.Duration,
		})
	}

	return &response_models.Route{
		Origin:       result.Origin,
		Destination:  result.Destination,
		TravelMode:   travelMode,
		DistanceText: result.DistanceText,
		DurationText: result.DurationText,
		Polyline:     result.Polyline,
		Steps:        steps,
	}, nil
}

func parseTravelMode(mode string) (response_models.TravelMode, error) {
	if strings.TrimSpace(mode) == "" {
		return response_models.TravelModeDriving, nil
	}
	m := response_models.TravelMode(strings.ToUpper(strings.TrimSpace(mode)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: unknown travel mode %q", utils.ErrInvalidInput, mode)
	}
	return m, nil
}

func stripHTML(s string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(s, ""))
}
