package mapsfx

import (
	"go.uber.org/fx"

	"placefinder/internal/clients/maps"
	"placefinder/internal/services"
	"placefinder/pkg/config"
)

var Module = fx.Provide(provideMapsClient)

func provideMapsClient(cfg *config.Config) services.MapsAPI {
	return maps.NewClient(cfg.MapsBaseURL, cfg.MapsAPIKey)
}
