package configfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"placefinder/pkg/config"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
)

func provideLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}
