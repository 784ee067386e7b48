package api

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francislub/busines-consultant-sub001/models"
)

const testSecret = "test-session-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	user := models.User{ID: uuid.New(), Role: models.RoleAdmin}

	token, err := IssueSessionToken(testSecret, user, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verifier := jwtVerifier{secret: []byte(testSecret)}
	principal, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, principal.UserID)
	assert.Equal(t, models.RoleAdmin, principal.Role)
	assert.True(t, principal.IsAdmin())
}

func TestSessionTokenWrongSecret(t *testing.T) {
	user := models.User{ID: uuid.New(), Role: models.RoleClient}

	token, err := IssueSessionToken(testSecret, user, time.Hour)
	require.NoError(t, err)

	verifier := jwtVerifier{secret: []byte("a-different-secret")}
	_, err = verifier.Verify(context.Background(), token)
	assert.Error(t, err)
}

func TestSessionTokenExpired(t *testing.T) {
	user := models.User{ID: uuid.New(), Role: models.RoleClient}

	token, err := IssueSessionToken(testSecret, user, -time.Minute)
	require.NoError(t, err)

	verifier := jwtVerifier{secret: []byte(testSecret)}
	_, err = verifier.Verify(context.Background(), token)
	assert.Error(t, err)
}

func TestSessionTokenGarbage(t *testing.T) {
	verifier := jwtVerifier{secret: []byte(testSecret)}
	_, err := verifier.Verify(context.Background(), "not.a.token")
	assert.Error(t, err)
}

func TestNewSessionVerifierRequiresSecret(t *testing.T) {
	_, err := newSessionVerifier(map[string]string{})
	assert.Error(t, err)

	v, err := newSessionVerifier(map[string]string{"SESSION_SECRET": testSecret})
	require.NoError(t, err)
	assert.IsType(t, jwtVerifier{}, v)
}
