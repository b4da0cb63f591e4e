package cache

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinseltown/scriptdoctor/internal/monitoring"
)

func TestCacheSetGet(t *testing.T) {
	c := New(time.Minute)

	_, found := c.Get("missing")
	assert.False(t, found)

	c.Set("key", []byte("payload"))
	data, found := c.Get("key")
	require.True(t, found)
	assert.Equal(t, []byte("payload"), data)
	assert.Equal(t, 1, c.Size())

	c.Delete("key")
	_, found = c.Get("key")
	assert.False(t, found)
}

func TestCacheExpiry(t *testing.T) {
	c := New(10 * time.Millisecond)
	c.Set("key", []byte("payload"))

	time.Sleep(20 * time.Millisecond)

	_, found := c.Get("key")
	assert.False(t, found)
}

func TestCacheClear(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestCacheStats(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", []byte("1"))

	stats := c.Stats()
	assert.Equal(t, 1, stats["total_items"])
	assert.Equal(t, 1, stats["active_items"])
	assert.Equal(t, 60.0, stats["ttl_seconds"])
}

func cachedRouter(c *Cache, metrics *monitoring.Metrics, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(c.Middleware(metrics, monitoring.NewLogger()))
	handler := func(ctx *gin.Context) {
		*hits++
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
	}
	r.POST("/score", handler)
	r.POST("/generate", handler)
	return r
}

func TestMiddlewareCachesDeterministicEndpoints(t *testing.T) {
	c := New(time.Minute)
	metrics := monitoring.NewMetrics()
	hits := 0
	r := cachedRouter(c, metrics, &hits)

	body := `{"tags":[{"id":"GENRE_ACTION","percent":1.0,"category":"Genre"}]}`

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewBufferString(body))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// Only the first request reaches the handler.
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, c.Size())
}

func TestMiddlewareDistinguishesBodies(t *testing.T) {
	c := New(time.Minute)
	metrics := monitoring.NewMetrics()
	hits := 0
	r := cachedRouter(c, metrics, &hits)

	for _, body := range []string{`{"a":1}`, `{"a":2}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewBufferString(body))
		r.ServeHTTP(w, req)
	}

	assert.Equal(t, 2, hits)
}

func TestMiddlewareSkipsRandomizedEndpoints(t *testing.T) {
	c := New(time.Minute)
	metrics := monitoring.NewMetrics()
	hits := 0
	r := cachedRouter(c, metrics, &hits)

	body := `{"target_avg_comp":4.0}`
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate", bytes.NewBufferString(body))
		r.ServeHTTP(w, req)
	}

	// Generation is never cached.
	assert.Equal(t, 2, hits)
	assert.Equal(t, 0, c.Size())
}
