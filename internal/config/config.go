package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every externally tunable knob. Loaded once at startup;
// request handlers only ever see the parsed values.
type Config struct {
	Port string

	LLMProvider  string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	MapsAPIKey string

	MinDays int
	MaxDays int

	// Inner ladder: identical-request retries after a 503-class failure.
	MaxJSONRetries   int
	GeminiRetryDelay time.Duration

	// Outer ladder: full restarts after a validation-class failure.
	MaxAppRetries int
	AppRetryDelay time.Duration

	MaxTTSRetries int
	TTSLanguage   string
	TTSVoice      string

	FallbackFile string

	JWTSecret  string
	SessionTTL time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		LLMProvider:      getEnv("LLM_PROVIDER", "gemini"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		MapsAPIKey:       os.Getenv("GOOGLE_MAPS_API_KEY"),
		MinDays:          getEnvInt("MIN_DAYS", 1),
		MaxDays:          getEnvInt("MAX_DAYS", 7),
		MaxJSONRetries:   getEnvInt("MAX_JSON_RETRIES", 5),
		GeminiRetryDelay: time.Duration(getEnvInt("GEMINI_RETRY_DELAY_MS", 1000)) * time.Millisecond,
		MaxAppRetries:    getEnvInt("MAX_APP_RETRIES", 3),
		AppRetryDelay:    time.Duration(getEnvFloat("RETRY_DELAY_S", 2.0) * float64(time.Second)),
		MaxTTSRetries:    getEnvInt("MAX_TTS_RETRIES", 2),
		TTSLanguage:      getEnv("TTS_LANGUAGE_CODE", "en-US"),
		TTSVoice:         getEnv("TTS_VOICE_NAME", "en-US-Wavenet-D"),
		FallbackFile:     getEnv("FALLBACK_FILE", "fallback_itinerary.json"),
		JWTSecret:        getEnv("JWT_SECRET", "tripcast-dev-secret"),
		SessionTTL:       time.Duration(getEnvInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MinDays < 1 {
		return fmt.Errorf("MIN_DAYS must be at least 1, got %d", c.MinDays)
	}
	if c.MaxDays < c.MinDays {
		return fmt.Errorf("MAX_DAYS (%d) must not be below MIN_DAYS (%d)", c.MaxDays, c.MinDays)
	}
	if c.MaxJSONRetries < 1 {
		return fmt.Errorf("MAX_JSON_RETRIES must be at least 1, got %d", c.MaxJSONRetries)
	}
	if c.MaxAppRetries < 1 {
		return fmt.Errorf("MAX_APP_RETRIES must be at least 1, got %d", c.MaxAppRetries)
	}
	if c.MaxTTSRetries < 1 {
		return fmt.Errorf("MAX_TTS_RETRIES must be at least 1, got %d", c.MaxTTSRetries)
	}
	return nil
}

// LLMConfigured reports whether the active provider has usable credentials.
// The literal "x" is the documented placeholder for a disabled key.
func (c *Config) LLMConfigured() bool {
	switch c.LLMProvider {
	case "openai":
		return c.OpenAIAPIKey != "" && c.OpenAIAPIKey != "x"
	default:
		return c.GeminiAPIKey != "" && c.GeminiAPIKey != "x"
	}
}

func (c *Config) ActiveModel() string {
	if c.LLMProvider == "openai" {
		return c.OpenAIModel
	}
	return c.GeminiModel
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %g", key, v, fallback)
		return fallback
	}
	return f
}
