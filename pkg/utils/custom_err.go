package utils

import "errors"

var (
	// ErrRetryableGeneration is the distinguished signal the orchestrator
	// returns when the model produced unusable output (malformed JSON,
	// schema violation). The session controller restarts the whole
	// generation from scratch when it sees this, bounded by MAX_APP_RETRIES.
	ErrRetryableGeneration = errors.New("generation produced invalid output, restart requested")

	// ErrGenerationUnavailable means the inner same-request retry ladder
	// exhausted its attempts against a 503-class failure.
	ErrGenerationUnavailable = errors.New("generation service unavailable after retries")

	ErrLLMNotConfigured = errors.New("llm client is not configured")
	ErrFallbackMissing  = errors.New("fallback itinerary unavailable")

	ErrSessionNotFound  = errors.New("session not found or expired")
	ErrNoItinerary      = errors.New("no itinerary stored for this session")
	ErrDayOutOfRange    = errors.New("day index out of range")
	ErrInvalidDayCount  = errors.New("day count outside the allowed range")
	ErrTTSNotEnabled    = errors.New("text-to-speech API is not enabled for this project")
	ErrAudioUnavailable = errors.New("audio synthesis failed")
)
