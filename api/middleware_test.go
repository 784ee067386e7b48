package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francislub/busines-consultant-sub001/models"
)

func newTestAuthMiddleware(t *testing.T) authMiddleware {
	t.Helper()
	verifier, err := newSessionVerifier(map[string]string{"SESSION_SECRET": testSecret})
	require.NoError(t, err)
	return newAuthMiddleware(verifier)
}

func issueTestToken(t *testing.T, role string) string {
	t.Helper()
	token, err := IssueSessionToken(testSecret, models.User{ID: uuid.New(), Role: role}, time.Hour)
	require.NoError(t, err)
	return token
}

func principalEcho(captured *Principal) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p, ok := principalFromCtx(r.Context()); ok {
			*captured = p
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	m := newTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/api/inquiries", nil)
	rec := httptest.NewRecorder()

	var captured Principal
	m.authenticate(principalEcho(&captured)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, uuid.Nil, captured.UserID)
}

func TestAuthenticateRejectsInvalidToken(t *testing.T) {
	m := newTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/api/inquiries", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()

	m.authenticate(principalEcho(&Principal{})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateAttachesPrincipal(t *testing.T) {
	m := newTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/api/inquiries", nil)
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, models.RoleClient))
	rec := httptest.NewRecorder()

	var captured Principal
	m.authenticate(principalEcho(&captured)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEqual(t, uuid.Nil, captured.UserID)
	assert.Equal(t, models.RoleClient, captured.Role)
}

func TestRequireAdmin(t *testing.T) {
	m := newTestAuthMiddleware(t)

	handler := m.authenticate(m.requireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req.Header.Set("Authorization", "Bearer "+issueTestToken(t, models.RoleAdmin))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("valid client session gets 403, not 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req.Header.Set("Authorization", "Bearer "+issueTestToken(t, models.RoleClient))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no session gets 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOptionalMiddleware(t *testing.T) {
	m := newTestAuthMiddleware(t)

	t.Run("anonymous passes through without principal", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/comment", nil)
		rec := httptest.NewRecorder()

		var captured Principal
		m.optional(principalEcho(&captured)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, uuid.Nil, captured.UserID)
	})

	t.Run("valid token attaches principal", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/comment", nil)
		req.Header.Set("Authorization", "Bearer "+issueTestToken(t, models.RoleClient))
		rec := httptest.NewRecorder()

		var captured Principal
		m.optional(principalEcho(&captured)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEqual(t, uuid.Nil, captured.UserID)
	})

	t.Run("invalid token still passes through anonymously", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/comment", nil)
		req.Header.Set("Authorization", "Bearer expired-or-garbage")
		rec := httptest.NewRecorder()

		var captured Principal
		m.optional(principalEcho(&captured)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, uuid.Nil, captured.UserID)
	})
}

func TestPrincipalContextRoundTrip(t *testing.T) {
	p := Principal{UserID: uuid.New(), Role: models.RoleAdmin}
	ctx := ctxWithPrincipal(context.Background(), p)

	got, ok := principalFromCtx(ctx)
	require.True(t, ok)
	assert.Equal(t, p, got)

	_, ok = principalFromCtx(context.Background())
	assert.False(t, ok)
}
