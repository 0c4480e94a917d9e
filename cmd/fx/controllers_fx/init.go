package controllers_fx

import (
	"go.uber.org/fx"

	"placefinder/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSearchController),
	fx.Provide(controllers.NewDirectionsController),
	fx.Provide(controllers.NewHealthController))
