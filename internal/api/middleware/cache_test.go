package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapCache struct {
	entries map[string][]byte
	ttls    map[string]int
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte), ttls: make(map[string]int)}
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := c.entries[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return v, nil
}

func (c *mapCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	c.entries[key] = value
	c.ttls[key] = expirationSeconds
	return nil
}

func (c *mapCache) Delete(ctx context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func (c *mapCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := c.entries[key]
	return ok, nil
}

func countingHandler(calls *int, status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

func TestCacheMiddleware_MissThenHit(t *testing.T) {
	cache := newMapCache()
	mw := NewCacheMiddleware(cache, nil)

	calls := 0
	handler := mw.Middleware(countingHandler(&calls, http.StatusOK, `{"total_patients":2}`))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/audit", nil))
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 30, cache.ttls["GET:/api/audit"])

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/audit", nil))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, 1, calls, "hit must not reach the handler")
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestCacheMiddleware_QueryStringSeparatesEntries(t *testing.T) {
	cache := newMapCache()
	mw := NewCacheMiddleware(cache, nil)

	calls := 0
	handler := mw.Middleware(countingHandler(&calls, http.StatusOK, `{}`))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/patients/priority?limit=5", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/patients/priority?limit=10", nil))

	assert.Equal(t, 2, calls)
	require.Contains(t, cache.entries, "GET:/api/patients/priority?limit=5")
	require.Contains(t, cache.entries, "GET:/api/patients/priority?limit=10")
}

func TestCacheMiddleware_ErrorsAreNotCached(t *testing.T) {
	cache := newMapCache()
	mw := NewCacheMiddleware(cache, nil)

	calls := 0
	handler := mw.Middleware(countingHandler(&calls, http.StatusServiceUnavailable, `{"error":"patient dataset is unavailable"}`))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/audit", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/audit", nil))

	assert.Equal(t, 2, calls)
	assert.Empty(t, cache.entries)
}

func TestCacheMiddleware_UnknownRouteBypassed(t *testing.T) {
	cache := newMapCache()
	mw := NewCacheMiddleware(cache, nil)

	calls := 0
	handler := mw.Middleware(countingHandler(&calls, http.StatusOK, "OK"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, 1, calls)
	assert.Empty(t, rec.Header().Get("X-Cache"))
	assert.Empty(t, cache.entries)
}
