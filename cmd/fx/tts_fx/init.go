package tts_fx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"tripcast/internal/config"
	"tripcast/pkg/tts"
)

var Module = fx.Provide(provideSynthesizer)

// provideSynthesizer reuses the Gemini API key: both services live in the
// same Google Cloud project. Nil means the audio pipeline reports failure
// instead of calling out.
func provideSynthesizer(cfg *config.Config) tts.Synthesizer {
	if cfg.GeminiAPIKey == "" || cfg.GeminiAPIKey == "x" {
		log.Println("Warning: no API key for Text-to-Speech, audio summaries disabled")
		return nil
	}
	synth, err := tts.NewGoogleSynthesizer(context.Background(), cfg.GeminiAPIKey, tts.VoiceConfig{
		LanguageCode: cfg.TTSLanguage,
		VoiceName:    cfg.TTSVoice,
	})
	if err != nil {
		log.Printf("Warning: could not initialize Text-to-Speech: %v", err)
		return nil
	}
	return synth
}
