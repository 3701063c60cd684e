package tools_fx

import (
	"go.uber.org/fx"

	"tripcast/internal/config"
	"tripcast/internal/tools"
)

var Module = fx.Provide(provideMapsClient, provideRegistry)

func provideMapsClient(cfg *config.Config) *tools.MapsClient {
	return tools.NewMapsClient(cfg.MapsAPIKey)
}

func provideRegistry(maps *tools.MapsClient) *tools.Registry {
	return tools.NewRegistry(maps)
}
