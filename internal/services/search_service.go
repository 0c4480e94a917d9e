package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"placefinder/internal/models/response_models"
	"placefinder/pkg/geo"
	"placefinder/pkg/utils"
)

type SearchServiceInterface interface {
	ProcessQuery(ctx context.Context, query string, userLocation *geo.Coordinates) (*response_models.ResultSet, error)
}

// SearchService runs the query resolution pipeline: intent extraction,
// biased place search, curation. Each request is one pass, no state
// survives it.
type SearchService struct {
	intentService  IntentServiceInterface
	placeService   PlaceServiceInterface
	curatorService CuratorServiceInterface
	logger         *zap.Logger
}

func NewSearchService(
	intentService IntentServiceInterface,
	placeService PlaceServiceInterface,
	curatorService CuratorServiceInterface,
	logger *zap.Logger,
) SearchServiceInterface {
	return &SearchService{
		intentService:  intentService,
		placeService:   placeService,
		curatorService: curatorService,
		logger:         logger,
	}
}

func (s *SearchService) ProcessQuery(ctx context.Context, query string, userLocation *geo.Coordinates) (*response_models.ResultSet, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", utils.ErrInvalidInput)
	}
	if userLocation != nil && !userLocation.Valid() {
		return nil, utils.ErrInvalidCoordinates
	}

	start := time.Now()

	intent := s.intentService.Extract(ctx, query, userLocation)
	s.logger.Info("extracted search intent",
		zap.String("query", query),
		zap.String("search_term", intent.SearchTerm),
		zap.String("query_type", string(intent.QueryType)),
		zap.String("location_hint", intent.LocationHint))

	locations, err := s.placeService.Search(ctx, intent, userLocation)
	if err != nil {
		return nil, err
	}

	result := s.curatorService.Curate(intent, locations, userLocation)
	s.logger.Info("query resolved",
		zap.String("query", query),
		zap.Int("results", len(result.Locations)),
		zap.Duration("elapsed", time.Since(start)))

	return &result, nil
}
