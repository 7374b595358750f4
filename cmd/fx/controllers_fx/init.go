package controllers_fx

import (
	"go.uber.org/fx"

	"lounge/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewDestinationsController),
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewProfilesController),
	fx.Provide(controllers.NewBookmarksController))
