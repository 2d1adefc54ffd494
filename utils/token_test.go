package utils

import (
	"testing"

	"github.com/aromabeans/coffee-feedback/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config.JWTSecret = "test-secret"

	token, err := GenerateToken("abc123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	config.JWTSecret = "test-secret"

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	config.JWTSecret = "test-secret"
	token, err := GenerateToken("abc123")
	require.NoError(t, err)

	config.JWTSecret = "other-secret"
	defer func() { config.JWTSecret = "test-secret" }()

	_, err = ValidateToken(token)
	assert.Error(t, err)
}
