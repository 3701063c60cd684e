package tts

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	texttospeech "google.golang.org/api/texttospeech/v1"

	"tripcast/pkg/utils"
)

// Synthesizer turns a text summary into spoken audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// VoiceConfig is fixed per deployment; the service always requests MP3.
type VoiceConfig struct {
	LanguageCode string
	VoiceName    string
}

// GoogleSynthesizer calls the Cloud Text-to-Speech REST API.
type GoogleSynthesizer struct {
	service *texttospeech.Service
	voice   VoiceConfig
}

func NewGoogleSynthesizer(ctx context.Context, apiKey string, voice VoiceConfig) (*GoogleSynthesizer, error) {
	service, err := texttospeech.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech service: %w", err)
	}
	return &GoogleSynthesizer{service: service, voice: voice}, nil
}

func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := g.service.Text.Synthesize(&texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{Text: text},
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: g.voice.LanguageCode,
			Name:         g.voice.VoiceName,
			SsmlGender:   "FEMALE",
		},
		AudioConfig: &texttospeech.AudioConfig{AudioEncoding: "MP3"},
	}).Context(ctx).Do()
	if err != nil {
		return nil, classify(err)
	}

	audio, err := base64.StdEncoding.DecodeString(resp.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decode audio content: %w", err)
	}
	return audio, nil
}

// classify maps a 403 naming the TTS service onto the distinguished
// "API not enabled" condition; other errors pass through for the retry
// ladder to inspect.
func classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusForbidden &&
		strings.Contains(gerr.Error(), "texttospeech.googleapis.com") {
		return fmt.Errorf("%w: %v", utils.ErrTTSNotEnabled, err)
	}
	return err
}

// IsUnavailable reports the only TTS failure worth an immediate retry.
func IsUnavailable(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code >= http.StatusInternalServerError
	}
	return false
}
