package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"tripcast/internal/models/domain_models"
	"tripcast/pkg/llm"
	"tripcast/pkg/tts"
	"tripcast/pkg/utils"
)

// AudioServiceInterface runs the two-stage audio pipeline for one day:
// a spoken-style text summary, then speech synthesis.
type AudioServiceInterface interface {
	Summarize(ctx context.Context, day domain_models.Day) ([]byte, error)
}

type AudioService struct {
	client        llm.Client
	synth         tts.Synthesizer
	maxTTSRetries int
}

func NewAudioService(client llm.Client, synth tts.Synthesizer, maxTTSRetries int) AudioServiceInterface {
	return &AudioService{
		client:        client,
		synth:         synth,
		maxTTSRetries: maxTTSRetries,
	}
}

func (a *AudioService) Summarize(ctx context.Context, day domain_models.Day) ([]byte, error) {
	if a.client == nil {
		return nil, utils.ErrLLMNotConfigured
	}
	if a.synth == nil {
		return nil, fmt.Errorf("%w: no synthesizer configured", utils.ErrAudioUnavailable)
	}

	summary, err := a.client.GenerateSummary(ctx, llm.SummaryPrompt(day.DayName, activitiesBlock(day)))
	if err != nil {
		// Summary failures are terminal: the user retries manually.
		return nil, fmt.Errorf("%w: summary generation failed: %v", utils.ErrAudioUnavailable, err)
	}

	for attempt := 0; attempt < a.maxTTSRetries; attempt++ {
		audio, serr := a.synth.Synthesize(ctx, summary)
		if serr == nil {
			return audio, nil
		}
		if errors.Is(serr, utils.ErrTTSNotEnabled) {
			return nil, serr
		}
		if tts.IsUnavailable(serr) && attempt < a.maxTTSRetries-1 {
			// Immediate retry, no delay: only for 503-class TTS failures.
			log.Printf("TTS API unavailable (attempt %d/%d), retrying immediately", attempt+1, a.maxTTSRetries)
			continue
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrAudioUnavailable, serr)
	}

	return nil, utils.ErrAudioUnavailable
}

// activitiesBlock renders the day for the podcast prompt, one activity per
// line with time range, name, description and cost.
func activitiesBlock(day domain_models.Day) string {
	lines := make([]string, 0, len(day.Activities))
	for _, act := range day.Activities {
		lines = append(lines, fmt.Sprintf("- %s-%s: %s. Description: %s. Cost: %s",
			act.StartTime, act.EndTime, act.Name, act.ShortDescription, act.EstimatedCost))
	}
	return strings.Join(lines, "\n")
}
