package services

import (
	"sort"

	"go.uber.org/zap"

	"placefinder/internal/models/response_models"
	"placefinder/pkg/geo"
)

type CuratorServiceInterface interface {
	Curate(intent response_models.SearchIntent, locations []response_models.Location, userLocation *geo.Coordinates) response_models.ResultSet
}

// CuratorService dedupes, annotates and frames raw search results. The
// provider's relevance order is the ranking; sorting by computed distance
// is an explicit opt-in, never the default.
type CuratorService struct {
	maxResults     int
	sortByDistance bool
	logger         *zap.Logger
}

func NewCuratorService(maxResults int, sortByDistance bool, logger *zap.Logger) CuratorServiceInterface {
	return &CuratorService{
		maxResults:     maxResults,
		sortByDistance: sortByDistance,
		logger:         logger,
	}
}

func (s *CuratorService) Curate(intent response_models.SearchIntent, locations []response_models.Location, userLocation *geo.Coordinates) response_models.ResultSet {
	curated := dedupeByID(locations)

	if userLocation != nil {
		for i := range curated {
			d := geo.Haversine(*userLocation, curated[i].Coordinates)
			curated[i].DistanceMeters = &d
		}
		if s.sortByDistance {
			sort.SliceStable(curated, func(i, j int) bool {
				return *curated[i].DistanceMeters < *curated[j].DistanceMeters
			})
		}
	}

	// Truncate only after dedup so duplicates never displace distinct
	// results.
	if len(curated) > s.maxResults {
		curated = curated[:s.maxResults]
	}

	center, bounds := s.mapFrame(curated, userLocation)

	return response_models.ResultSet{
		Locations: curated,
		MapCenter: center,
		MapBounds: bounds,
		QueryEcho: intent,
	}
}

func dedupeByID(locations []response_models.Location) []response_models.Location {
	seen := make(map[string]bool, len(locations))
	out := make([]response_models.Location, 0, len(locations))
	for _, loc := range locations {
		if seen[loc.ID] {
			continue
		}
		seen[loc.ID] = true
		out = append(out, loc)
	}
	return out
}

func (s *CuratorService) mapFrame(locations []response_models.Location, userLocation *geo.Coordinates) (geo.Coordinates, *geo.BoundingBox) {
	if len(locations) == 0 {
		if userLocation != nil {
			return *userLocation, nil
		}
		return geo.Coordinates{}, nil
	}

	points := make([]geo.Coordinates, len(locations))
	for i, loc := range locations {
		points[i] = loc.Coordinates
	}

	center, err := geo.Center(points)
	if err != nil {
		// Unreachable with a non-empty set; guard anyway.
		s.logger.Error("map center computation failed", zap.Error(err))
		return geo.Coordinates{}, nil
	}

	bounds, err := geo.Bounds(points)
	if err != nil {
		return center, nil
	}

	return center, &bounds
}
