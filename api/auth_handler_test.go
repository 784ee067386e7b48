package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPasswordAuthDisabledUnderDelegatedSessions(t *testing.T) {
	// with Descope validating sessions, a locally signed token would never
	// verify, so the password endpoints must refuse to issue one
	handler := newAuthHandler(nil, "", time.Hour, false)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"name":"Amina","email":"amina@example.com","password":"longenough"}`))
	handler.register()(rr, req)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "disabled")

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"amina@example.com","password":"longenough"}`))
	handler.login()(rr, req)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
