package controllers_fx

import (
	"go.uber.org/fx"

	"tripcast/internal/api/controllers"
	"tripcast/internal/config"
	"tripcast/internal/services"
	"tripcast/internal/tools"
)

var Module = fx.Provide(
	provideSessionController,
	provideItineraryController,
	provideAudioController,
	provideToolsController,
)

func provideSessionController(sessionService services.SessionServiceInterface, cfg *config.Config) *controllers.SessionController {
	return controllers.NewSessionController(sessionService, []byte(cfg.JWTSecret), cfg.SessionTTL)
}

func provideItineraryController(sessionService services.SessionServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(sessionService)
}

func provideAudioController(sessionService services.SessionServiceInterface) *controllers.AudioController {
	return controllers.NewAudioController(sessionService)
}

func provideToolsController(maps *tools.MapsClient) *controllers.ToolsController {
	return controllers.NewToolsController(maps)
}
