package llm

import (
	"context"
	"fmt"
	"strings"
)

// Client is the surface the planner consumes. GenerateItinerary must return
// a single JSON document conforming to the itinerary schema; GenerateSummary
// returns free prose for the audio pipeline.
type Client interface {
	GenerateItinerary(ctx context.Context, destination string, days int, theme string) (string, error)
	GenerateSummary(ctx context.Context, prompt string) (string, error)
}

// ToolDispatcher executes a named lookup the model asked for during the
// research turn. Implementations must degrade to a descriptive string
// instead of failing; the returned text goes straight back to the model.
type ToolDispatcher interface {
	Dispatch(ctx context.Context, name string, args map[string]any) string
}

// New builds the configured provider, mirroring the provider switch used for
// the rest of the AI surface. dispatcher may be nil, which disables the
// grounding turn.
func New(provider, apiKey, model string, dispatcher ToolDispatcher) (Client, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model, dispatcher)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}
