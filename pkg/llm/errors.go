package llm

import (
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// The two failure classes the retry ladders care about. Everything else is
// treated as a content failure and escalated to the outer restart loop.

// IsUnavailable reports a 503-class infrastructure failure: retry the same
// request after a fixed delay.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code >= http.StatusInternalServerError
	}
	var aerr *openai.APIError
	if errors.As(err, &aerr) {
		return aerr.HTTPStatusCode >= http.StatusInternalServerError
	}
	if s, ok := status.FromError(err); ok && s.Code() == codes.Unavailable {
		return true
	}
	return false
}

// IsQuotaExhausted reports a 429-class failure: never retried, the caller
// switches to the demo fallback instead.
func IsQuotaExhausted(err error) bool {
	if err == nil {
		return false
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusTooManyRequests
	}
	var aerr *openai.APIError
	if errors.As(err, &aerr) {
		return aerr.HTTPStatusCode == http.StatusTooManyRequests
	}
	if s, ok := status.FromError(err); ok && s.Code() == codes.ResourceExhausted {
		return true
	}
	return false
}
