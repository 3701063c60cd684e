package audio_fx

import (
	"go.uber.org/fx"

	"tripcast/internal/config"
	"tripcast/internal/services"
	"tripcast/pkg/llm"
	"tripcast/pkg/tts"
)

var Module = fx.Provide(provideAudioService)

func provideAudioService(client llm.Client, synth tts.Synthesizer, cfg *config.Config) services.AudioServiceInterface {
	return services.NewAudioService(client, synth, cfg.MaxTTSRetries)
}
