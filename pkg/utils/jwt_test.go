package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := CreateSessionToken(secret, "session-123", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateSessionToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "session-123", claims.SessionID)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := CreateSessionToken([]byte("right"), "session-123", time.Hour)
	require.NoError(t, err)

	_, err = ValidateSessionToken([]byte("wrong"), token)
	assert.Error(t, err)
}

func TestSessionTokenExpired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := CreateSessionToken(secret, "session-123", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateSessionToken(secret, token)
	assert.Error(t, err)
}

func TestSessionTokenGarbage(t *testing.T) {
	_, err := ValidateSessionToken([]byte("test-secret"), "not-a-token")
	assert.Error(t, err)
}
