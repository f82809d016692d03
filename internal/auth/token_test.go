package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gymd/internal/auth"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour, "gymd")
	userID := uuid.New()

	token, err := svc.Issue(userID, "member@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	issuer := auth.NewTokenService("secret-a", time.Hour, "gymd")
	verifier := auth.NewTokenService("secret-b", time.Hour, "gymd")

	token, err := issuer.Issue(uuid.New(), "")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	svc := auth.NewTokenService("test-secret", -time.Minute, "gymd")

	token, err := svc.Issue(uuid.New(), "")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour, "gymd")

	_, err := svc.Validate("not-a-token")
	assert.Error(t, err)
}

func TestPassword_RoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)

	assert.True(t, auth.VerifyPassword(hash, "hunter2"))
	assert.False(t, auth.VerifyPassword(hash, "hunter3"))
	assert.False(t, auth.VerifyPassword("", "hunter2"))
}
