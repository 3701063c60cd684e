package llm_fx

import (
	"log"

	"go.uber.org/fx"

	"tripcast/internal/config"
	"tripcast/internal/tools"
	"tripcast/pkg/llm"
)

var Module = fx.Provide(provideLLMClient)

// provideLLMClient returns a nil client when no usable credentials exist.
// The planner fails fast on a nil client instead of attempting calls.
func provideLLMClient(cfg *config.Config, registry *tools.Registry) llm.Client {
	if !cfg.LLMConfigured() {
		log.Printf("Warning: %s credentials are not configured, the planning agent will be inactive", cfg.LLMProvider)
		return nil
	}

	var dispatcher llm.ToolDispatcher
	if cfg.MapsAPIKey != "" {
		dispatcher = registry
	}

	apiKey := cfg.GeminiAPIKey
	model := cfg.GeminiModel
	if cfg.LLMProvider == "openai" {
		apiKey = cfg.OpenAIAPIKey
		model = cfg.OpenAIModel
	}

	client, err := llm.New(cfg.LLMProvider, apiKey, model, dispatcher)
	if err != nil {
		log.Printf("Warning: could not initialize the %s client: %v", cfg.LLMProvider, err)
		return nil
	}
	log.Printf("%s client initialized correctly", cfg.LLMProvider)
	return client
}
