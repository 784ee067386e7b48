package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithURLParam(name, value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestPathID(t *testing.T) {
	id := uuid.New()

	got, err := pathID(requestWithURLParam("articleID", id.String()), "articleID")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = pathID(requestWithURLParam("articleID", "not-a-uuid"), "articleID")
	assert.Error(t, err)

	_, err = pathID(httptest.NewRequest(http.MethodGet, "/", nil), "articleID")
	assert.Error(t, err)
}

func TestPagination(t *testing.T) {
	page, limit := pagination(httptest.NewRequest(http.MethodGet, "/api/articles?page=3&limit=20", nil))
	assert.Equal(t, 3, page)
	assert.Equal(t, 20, limit)

	// defaults: first page, no pagination
	page, limit = pagination(httptest.NewRequest(http.MethodGet, "/api/articles", nil))
	assert.Equal(t, 1, page)
	assert.Equal(t, 0, limit)

	// nonsense values fall back to the defaults
	page, limit = pagination(httptest.NewRequest(http.MethodGet, "/api/articles?page=-2&limit=abc", nil))
	assert.Equal(t, 1, page)
	assert.Equal(t, 0, limit)
}

func TestDecodeBody(t *testing.T) {
	var dst struct {
		Title string `json:"title"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Hello"}`))
	require.NoError(t, decodeBody(req, &dst))
	assert.Equal(t, "Hello", dst.Title)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	assert.Error(t, decodeBody(req, &dst))
}
