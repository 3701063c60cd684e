package llm

import (
	"fmt"
	"net/http"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestIsUnavailable(t *testing.T) {
	assert.True(t, IsUnavailable(&googleapi.Error{Code: http.StatusServiceUnavailable}))
	assert.True(t, IsUnavailable(&googleapi.Error{Code: http.StatusInternalServerError}))
	assert.True(t, IsUnavailable(fmt.Errorf("call failed: %w", &googleapi.Error{Code: http.StatusBadGateway})))
	assert.True(t, IsUnavailable(&openai.APIError{HTTPStatusCode: http.StatusServiceUnavailable}))
	assert.True(t, IsUnavailable(status.Error(codes.Unavailable, "overloaded")))

	assert.False(t, IsUnavailable(nil))
	assert.False(t, IsUnavailable(&googleapi.Error{Code: http.StatusTooManyRequests}))
	assert.False(t, IsUnavailable(&googleapi.Error{Code: http.StatusBadRequest}))
	assert.False(t, IsUnavailable(&openai.APIError{HTTPStatusCode: http.StatusUnauthorized}))
	assert.False(t, IsUnavailable(fmt.Errorf("connection reset by peer")))
}

func TestIsQuotaExhausted(t *testing.T) {
	assert.True(t, IsQuotaExhausted(&googleapi.Error{Code: http.StatusTooManyRequests}))
	assert.True(t, IsQuotaExhausted(fmt.Errorf("call failed: %w", &googleapi.Error{Code: http.StatusTooManyRequests})))
	assert.True(t, IsQuotaExhausted(&openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}))
	assert.True(t, IsQuotaExhausted(status.Error(codes.ResourceExhausted, "quota exceeded")))

	assert.False(t, IsQuotaExhausted(nil))
	assert.False(t, IsQuotaExhausted(&googleapi.Error{Code: http.StatusServiceUnavailable}))
	assert.False(t, IsQuotaExhausted(fmt.Errorf("connection reset by peer")))
}
