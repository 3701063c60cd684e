package planner_fx

import (
	"go.uber.org/fx"

	"tripcast/internal/config"
	"tripcast/internal/fallback"
	"tripcast/internal/services"
	"tripcast/pkg/llm"
)

var Module = fx.Provide(providePlannerService)

func providePlannerService(client llm.Client, store *fallback.Store, cfg *config.Config) services.PlannerServiceInterface {
	return services.NewPlannerService(client, store, services.PlannerConfig{
		MaxAttempts: cfg.MaxJSONRetries,
		RetryDelay:  cfg.GeminiRetryDelay,
		MinDays:     cfg.MinDays,
		MaxDays:     cfg.MaxDays,
	})
}
