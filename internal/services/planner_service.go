package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"tripcast/internal/fallback"
	"tripcast/internal/models/domain_models"
	"tripcast/pkg/llm"
	"tripcast/pkg/utils"
)

// PlannerServiceInterface is the generation orchestrator: one call in,
// either a validated itinerary (live or quota-fallback demo) or a classified
// error out.
type PlannerServiceInterface interface {
	Generate(ctx context.Context, destination string, days int, theme string) (*domain_models.TravelItinerary, error)
}

type PlannerConfig struct {
	// MaxAttempts bounds the inner ladder: identical-request retries after
	// a 503-class failure.
	MaxAttempts int
	RetryDelay  time.Duration
	MinDays     int
	MaxDays     int
}

type PlannerService struct {
	client   llm.Client
	fallback *fallback.Store
	cfg      PlannerConfig
	sleep    func(time.Duration)
}

// NewPlannerService wires the orchestrator. client may be nil when no usable
// credentials were configured; Generate then fails fast before any call.
func NewPlannerService(client llm.Client, fallbackStore *fallback.Store, cfg PlannerConfig) PlannerServiceInterface {
	return &PlannerService{
		client:   client,
		fallback: fallbackStore,
		cfg:      cfg,
		sleep:    time.Sleep,
	}
}

func (p *PlannerService) Generate(ctx context.Context, destination string, days int, theme string) (*domain_models.TravelItinerary, error) {
	if p.client == nil {
		return nil, utils.ErrLLMNotConfigured
	}
	if days < p.cfg.MinDays || days > p.cfg.MaxDays {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", utils.ErrInvalidDayCount, days, p.cfg.MinDays, p.cfg.MaxDays)
	}

	for attempt := 0; attempt < p.cfg.MaxAttempts; attempt++ {
		raw, err := p.client.GenerateItinerary(ctx, destination, days, theme)
		if err == nil {
			itinerary, perr := domain_models.ParseItinerary([]byte(raw))
			if perr != nil {
				// Content failure: not retried in place. The session
				// controller restarts the whole generation from scratch.
				return nil, fmt.Errorf("%w: %v", utils.ErrRetryableGeneration, perr)
			}
			return itinerary, nil
		}

		switch {
		case llm.IsQuotaExhausted(err):
			// Deliberate short-circuit: quota failures are never retried,
			// the labeled demo plan takes over immediately.
			log.Printf("Quota exceeded (429), activating demo data: %v", err)
			return p.fallback.ExpandForQuota(days, destination, theme)

		case llm.IsUnavailable(err):
			if attempt < p.cfg.MaxAttempts-1 {
				log.Printf("Attempt %d: retrying after a 503-class error, waiting %s", attempt+1, p.cfg.RetryDelay)
				p.sleep(p.cfg.RetryDelay)
				continue
			}
			log.Printf("Max retries reached against unavailable generation service: %v", err)
			return nil, utils.ErrGenerationUnavailable

		default:
			return nil, fmt.Errorf("%w: %v", utils.ErrRetryableGeneration, err)
		}
	}

	return nil, utils.ErrGenerationUnavailable
}
