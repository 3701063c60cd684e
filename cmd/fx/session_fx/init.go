package session_fx

import (
	"go.uber.org/fx"

	"tripcast/internal/config"
	"tripcast/internal/fallback"
	"tripcast/internal/services"
	"tripcast/pkg/memcache"
)

var Module = fx.Provide(provideSessionStore, provideSessionService)

func provideSessionStore(cfg *config.Config) *memcache.SessionStore {
	return memcache.NewSessionStore(cfg.SessionTTL)
}

func provideSessionService(
	store *memcache.SessionStore,
	planner services.PlannerServiceInterface,
	audio services.AudioServiceInterface,
	fallbackStore *fallback.Store,
	cfg *config.Config,
) services.SessionServiceInterface {
	return services.NewSessionService(store, planner, audio, fallbackStore, services.SessionConfig{
		MaxAppRetries: cfg.MaxAppRetries,
		RetryDelay:    cfg.AppRetryDelay,
		ActiveModel:   cfg.ActiveModel(),
	})
}
