package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/francislub/busines-consultant-sub001/cache"
)

// With no redis configured the view cache must be a transparent pass-through.
func TestCacheViewsDisabledPassesThrough(t *testing.T) {
	viewCache := cache.New(map[string]string{})
	assert.False(t, viewCache.Enabled())

	calls := 0
	handler := CacheViews(viewCache)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"articles":[]}`))
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `{"articles":[]}`, rec.Body.String())
		assert.Empty(t, rec.Header().Get("X-Cache"))
	}

	assert.Equal(t, 2, calls, "every request must reach the handler when caching is off")
}

func TestViewCacheDisabledOperationsAreNoOps(t *testing.T) {
	viewCache := cache.New(nil)

	_, ok := viewCache.Get(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "/api/articles")
	assert.False(t, ok)

	// Set and Invalidate must not panic without a backend
	viewCache.Set(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "/api/articles", []byte("{}"))
	viewCache.Invalidate(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "/api/articles")
}
