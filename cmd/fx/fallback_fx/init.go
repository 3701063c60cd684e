package fallback_fx

import (
	"go.uber.org/fx"

	"tripcast/internal/config"
	"tripcast/internal/fallback"
)

var Module = fx.Provide(provideFallbackStore)

func provideFallbackStore(cfg *config.Config) *fallback.Store {
	return fallback.NewStore(cfg.FallbackFile)
}
