package controllers_fx

import (
	"daytour/internal/api/controllers"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewToursController),
	fx.Provide(controllers.NewDestinationsController),
	fx.Provide(controllers.NewInteractionsController))
