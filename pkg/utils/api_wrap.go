package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP statuses. The
// degraded-service cases deliberately do not reach here: a quota or
// retry-exhaustion fallback is a 200 with a labeled demo plan.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusUnauthorized, "Session not found or expired")
	case errors.Is(err, ErrNoItinerary):
		RespondError(c, http.StatusNotFound, "No itinerary has been generated for this session")
	case errors.Is(err, ErrDayOutOfRange):
		RespondError(c, http.StatusBadRequest, "Day index out of range")
	case errors.Is(err, ErrInvalidDayCount):
		RespondError(c, http.StatusBadRequest, "Day count outside the allowed range")
	case errors.Is(err, ErrLLMNotConfigured):
		RespondError(c, http.StatusServiceUnavailable, "The planning model is not configured")
	case errors.Is(err, ErrGenerationUnavailable):
		RespondError(c, http.StatusBadGateway, "The planning service is unavailable, try again later")
	case errors.Is(err, ErrFallbackMissing):
		RespondError(c, http.StatusInternalServerError, "Demo itinerary could not be loaded")
	case errors.Is(err, ErrTTSNotEnabled):
		RespondError(c, http.StatusBadGateway, "The Text-to-Speech API is not enabled")
	case errors.Is(err, ErrAudioUnavailable):
		RespondError(c, http.StatusBadGateway, "Audio summary could not be generated")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
