package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViewCache(t *testing.T) *ViewCache {
	t.Helper()

	mr := miniredis.RunT(t)
	c := New(map[string]string{
		"REDIS_ADDR":             mr.Addr(),
		"VIEW_CACHE_TTL_SECONDS": "60",
	})
	require.True(t, c.Enabled())
	return c
}

func TestViewCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestViewCache(t)

	_, ok := c.Get(ctx, "/api/articles")
	assert.False(t, ok)

	c.Set(ctx, "/api/articles", []byte(`{"articles":[]}`))

	payload, ok := c.Get(ctx, "/api/articles")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"articles":[]}`), payload)
}

func TestInvalidateCoversListAndDetailViews(t *testing.T) {
	ctx := context.Background()
	c := newTestViewCache(t)

	c.Set(ctx, "/api/articles", []byte(`list`))
	c.Set(ctx, "/api/articles?page=2", []byte(`page`))
	c.Set(ctx, "/api/article/7f1c9e2a-0b6d-4f3e-9a5c-1d2e3f4a5b6c", []byte(`detail`))
	c.Set(ctx, "/api/stories", []byte(`stories`))

	// the singular prefix reaches the list, its query variants and every
	// cached detail page, and leaves other entities alone
	c.Invalidate(ctx, "/api/article")

	_, ok := c.Get(ctx, "/api/articles")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "/api/articles?page=2")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "/api/article/7f1c9e2a-0b6d-4f3e-9a5c-1d2e3f4a5b6c")
	assert.False(t, ok)

	payload, ok := c.Get(ctx, "/api/stories")
	require.True(t, ok)
	assert.Equal(t, []byte(`stories`), payload)
}
