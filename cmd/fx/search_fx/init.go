package searchfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"placefinder/internal/clients/llm"
	"placefinder/internal/services"
	"placefinder/pkg/cache"
	"placefinder/pkg/config"
)

var Module = fx.Provide(
	provideIntentService,
	providePlaceService,
	provideCuratorService,
	provideSearchService,
	provideDirectionsService,
)

func provideIntentService(llmClient llm.Client, cfg *config.Config, logger *zap.Logger) services.IntentServiceInterface {
	return services.NewIntentService(llmClient, cfg.LLMTimeout, logger)
}

func providePlaceService(
	mapsClient services.MapsAPI,
	detailCache cache.DetailCache,
	cfg *config.Config,
	logger *zap.Logger,
) services.PlaceServiceInterface {
	return services.NewPlaceService(
		mapsClient,
		detailCache,
		cfg.SearchRadiusMeters,
		cfg.DetailLookupLimit,
		cfg.DetailConcurrency,
		logger,
	)
}

func provideCuratorService(cfg *config.Config, logger *zap.Logger) services.CuratorServiceInterface {
	return services.NewCuratorService(cfg.MaxResults, cfg.SortByDistance, logger)
}

func provideSearchService(
	intentService services.IntentServiceInterface,
	placeService services.PlaceServiceInterface,
	curatorService services.CuratorServiceInterface,
	logger *zap.Logger,
) services.SearchServiceInterface {
	return services.NewSearchService(intentService, placeService, curatorService, logger)
}

func provideDirectionsService(mapsClient services.MapsAPI, logger *zap.Logger) services.DirectionsServiceInterface {
	return services.NewDirectionsService(mapsClient, logger)
}
