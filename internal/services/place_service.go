package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"placefinder/internal/clients/maps"
	"placefinder/internal/models/response_models"
	"placefinder/pkg/cache"
	"placefinder/pkg/geo"
	"placefinder/pkg/utils"
)

// MapsAPI is the slice of the mapping provider the pipeline consumes.
type MapsAPI interface {
	TextSearch(ctx context.Context, query string, bias *geo.Coordinates, radiusMeters int) ([]maps.PlaceResult, error)
	PlaceDetails(ctx context.Context, placeID string) (*maps.PlaceDetail, error)
	Directions(ctx context.Context, origin, destination, mode string) (*maps.DirectionsResult, error)
	Geocode(ctx context.Context, address string) (*geo.Coordinates, error)
}

type PlaceServiceInterface interface {
	Search(ctx context.Context, intent response_models.SearchIntent, userLocation *geo.Coordinates) ([]response_models.Location, error)
}

type PlaceService struct {
	mapsClient        MapsAPI
	detailCache       cache.DetailCache
	defaultRadius     int
	detailLimit       int
	detailConcurrency int
	logger            *zap.Logger
}

func NewPlaceService(
	mapsClient MapsAPI,
	detailCache cache.DetailCache,
	defaultRadius int,
	detailLimit int,
	detailConcurrency int,
	logger *zap.Logger,
) PlaceServiceInterface {
	return &PlaceService{
		mapsClient:        mapsClient,
		detailCache:       detailCache,
		defaultRadius:     defaultRadius,
		detailLimit:       detailLimit,
		detailConcurrency: detailConcurrency,
		logger:            logger,
	}
}

// Search runs one biased text search and enriches each candidate with a
// detail lookup. Zero results is a valid answer; a failed search call is
// not and surfaces as ErrResolverUnavailable.
func (s *PlaceService) Search(ctx context.Context, intent response_models.SearchIntent, userLocation *geo.Coordinates) ([]response_models.Location, error) {
	query := s.buildQuery(intent)
	bias, radius := s.resolveBias(ctx, intent, userLocation)

	results, err := s.mapsClient.TextSearch(ctx, query, bias, radius)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrResolverUnavailable, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	// Cap before detail enrichment to bound provider cost.
	if len(results) > s.detailLimit {
		results = results[:s.detailLimit]
	}

	details := s.fetchDetails(ctx, results)

	locations := make([]response_models.Location, 0, len(results))
	for i, r := range results {
		locations = append(locations, normalizeLocation(r, details[i]))
	}
	return locations, nil
}

func (s *PlaceService) buildQuery(intent response_models.SearchIntent) string {
	if intent.LocationHint == "" {
		return intent.SearchTerm
	}
	return intent.SearchTerm + " " + intent.LocationHint
}

// resolveBias picks the point the search leans toward. The user's own
// location wins for proximity queries and hint-less queries; otherwise a
// named hint is geocoded best-effort.
func (s *PlaceService) resolveBias(ctx context.Context, intent response_models.SearchIntent, userLocation *geo.Coordinates) (*geo.Coordinates, int) {
	radius := intent.RadiusHint
	if radius <= 0 {
		radius = s.defaultRadius
	}

	if userLocation != nil && (intent.QueryType == response_models.QueryTypeNearby || intent.LocationHint == "") {
		return userLocation, radius
	}

	if intent.LocationHint != "" && !strings.EqualFold(intent.LocationHint, "near me") {
		point, err := s.mapsClient.Geocode(ctx, intent.LocationHint)
		if err != nil {
			s.logger.Warn("location hint geocoding failed, searching unbiased",
				zap.String("hint", intent.LocationHint),
				zap.Error(err))
			return nil, radius
		}
		return point, radius
	}

	return userLocation, radius
}

// fetchDetails enriches candidates with a bounded fan-out. The returned
// slice is index-aligned with the input so search-relevance order
// survives; a failed lookup leaves a nil slot and the candidate keeps its
// search-level fields.
func (s *PlaceService) fetchDetails(ctx context.Context, results []maps.PlaceResult) []*maps.PlaceDetail {
	details := make([]*maps.PlaceDetail, len(results))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.detailConcurrency)

	for i, r := range results {
		if r.PlaceID == "" {
			continue
		}

		g.Go(func() error {
			if s.detailCache != nil {
				if cached, ok := s.detailCache.Get(gctx, r.PlaceID); ok {
					details[i] = cached
					return nil
				}
			}

			detail, err := s.mapsClient.PlaceDetails(gctx, r.PlaceID)
			if err != nil {
				s.logger.Warn("place detail lookup failed, keeping search-level fields",
					zap.String("place_id", r.PlaceID),
					zap.Error(err))
				return nil
			}

			details[i] = detail
			if s.detailCache != nil {
				s.detailCache.Set(gctx, r.PlaceID, detail)
			}
			return nil
		})
	}

	_ = g.Wait()
	return details
}

func normalizeLocation(r maps.PlaceResult, detail *maps.PlaceDetail) response_models.Location {
	coords := geo.Coordinates{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng}

	loc := response_models.Location{
		ID:          r.PlaceID,
		Name:        r.Name,
		Address:     r.FormattedAddress,
		Coordinates: coords,
		Rating:      r.Rating,
		PriceLevel:  r.PriceLevel,
		ProviderURL: maps.PlaceURL(r.PlaceID, coords),
	}

	if detail != nil {
		if detail.Rating != nil {
			loc.Rating = detail.Rating
		}
		if detail.PriceLevel != nil {
			loc.PriceLevel = detail.PriceLevel
		}
		loc.OpeningHours = detail.WeekdayText()
		loc.Phone = detail.Phone
		loc.Website = detail.Website
	}

	return loc
}
