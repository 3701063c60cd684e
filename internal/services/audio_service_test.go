package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"tripcast/internal/models/domain_models"
	"tripcast/pkg/utils"
)

type fakeSummaryLLM struct {
	summary    string
	err        error
	lastPrompt string
}

func (f *fakeSummaryLLM) GenerateItinerary(ctx context.Context, destination string, days int, theme string) (string, error) {
	return "", fmt.Errorf("not used")
}

func (f *fakeSummaryLLM) GenerateSummary(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.summary, f.err
}

// scriptedSynth replays a fixed error sequence before succeeding.
type scriptedSynth struct {
	errs  []error
	audio []byte
	calls int
}

func (s *scriptedSynth) Synthesize(ctx context.Context, text string) ([]byte, error) {
	idx := s.calls
	s.calls++
	if idx < len(s.errs) && s.errs[idx] != nil {
		return nil, s.errs[idx]
	}
	return s.audio, nil
}

func summaryTestDay() domain_models.Day {
	return domain_models.Day{
		Date:    "2025-06-01",
		DayName: "Historic Center Exploration",
		Activities: []domain_models.Activity{
			{
				Name:             "Royal Palace",
				ShortDescription: "Palace tour",
				Location:         "Calle de Bailen",
				StartTime:        "09:30",
				EndTime:          "11:30",
				EstimatedCost:    "14€",
			},
			{
				Name:             "Plaza Mayor",
				ShortDescription: "Square stroll",
				Location:         "Plaza Mayor",
				StartTime:        "12:00",
				EndTime:          "13:00",
				EstimatedCost:    "Free",
			},
		},
	}
}

func TestSummarizeHappyPath(t *testing.T) {
	llmClient := &fakeSummaryLLM{summary: "Good morning! An incredible day awaits you..."}
	synth := &scriptedSynth{audio: []byte("mp3-bytes")}
	svc := NewAudioService(llmClient, synth, 2)

	audio, err := svc.Summarize(context.Background(), summaryTestDay())
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), audio)
	assert.Equal(t, 1, synth.calls)

	// The prompt carries the day name and one line per activity.
	assert.Contains(t, llmClient.lastPrompt, "Historic Center Exploration")
	assert.Contains(t, llmClient.lastPrompt, "- 09:30-11:30: Royal Palace. Description: Palace tour. Cost: 14€")
	assert.Contains(t, llmClient.lastPrompt, "- 12:00-13:00: Plaza Mayor. Description: Square stroll. Cost: Free")
	assert.True(t, strings.Contains(llmClient.lastPrompt, "Good morning! An incredible day awaits you..."))
}

func TestSummarizeRetriesOnceOnUnavailableTTS(t *testing.T) {
	llmClient := &fakeSummaryLLM{summary: "A fine day."}
	synth := &scriptedSynth{
		errs:  []error{&googleapi.Error{Code: http.StatusServiceUnavailable}},
		audio: []byte("mp3-bytes"),
	}
	svc := NewAudioService(llmClient, synth, 2)

	audio, err := svc.Summarize(context.Background(), summaryTestDay())
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), audio)
	assert.Equal(t, 2, synth.calls)
}

func TestSummarizeUnavailableTTSExhausts(t *testing.T) {
	llmClient := &fakeSummaryLLM{summary: "A fine day."}
	synth := &scriptedSynth{errs: []error{
		&googleapi.Error{Code: http.StatusServiceUnavailable},
		&googleapi.Error{Code: http.StatusServiceUnavailable},
	}}
	svc := NewAudioService(llmClient, synth, 2)

	_, err := svc.Summarize(context.Background(), summaryTestDay())
	assert.ErrorIs(t, err, utils.ErrAudioUnavailable)
	assert.Equal(t, 2, synth.calls)
}

func TestSummarizeNonRetriableTTSFailsAfterOneAttempt(t *testing.T) {
	llmClient := &fakeSummaryLLM{summary: "A fine day."}
	synth := &scriptedSynth{errs: []error{&googleapi.Error{Code: http.StatusBadRequest}}}
	svc := NewAudioService(llmClient, synth, 2)

	_, err := svc.Summarize(context.Background(), summaryTestDay())
	assert.ErrorIs(t, err, utils.ErrAudioUnavailable)
	assert.Equal(t, 1, synth.calls)
}

func TestSummarizeTTSNotEnabledIsTerminal(t *testing.T) {
	llmClient := &fakeSummaryLLM{summary: "A fine day."}
	synth := &scriptedSynth{errs: []error{fmt.Errorf("%w: forbidden", utils.ErrTTSNotEnabled)}}
	svc := NewAudioService(llmClient, synth, 2)

	_, err := svc.Summarize(context.Background(), summaryTestDay())
	assert.ErrorIs(t, err, utils.ErrTTSNotEnabled)
	assert.Equal(t, 1, synth.calls)
}

func TestSummarizeLLMFailureIsTerminal(t *testing.T) {
	llmClient := &fakeSummaryLLM{err: fmt.Errorf("model blew up")}
	synth := &scriptedSynth{audio: []byte("mp3-bytes")}
	svc := NewAudioService(llmClient, synth, 2)

	_, err := svc.Summarize(context.Background(), summaryTestDay())
	assert.ErrorIs(t, err, utils.ErrAudioUnavailable)
	assert.Equal(t, 0, synth.calls)
}

func TestSummarizeWithoutClients(t *testing.T) {
	svc := NewAudioService(nil, &scriptedSynth{}, 2)
	_, err := svc.Summarize(context.Background(), summaryTestDay())
	assert.ErrorIs(t, err, utils.ErrLLMNotConfigured)

	svc = NewAudioService(&fakeSummaryLLM{summary: "ok"}, nil, 2)
	_, err = svc.Summarize(context.Background(), summaryTestDay())
	assert.ErrorIs(t, err, utils.ErrAudioUnavailable)
}
