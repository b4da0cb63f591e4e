package security

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func securedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	sm := NewMiddleware(DefaultConfig())

	r := gin.New()
	r.Use(sm.SecurityHeaders)
	r.Use(sm.ValidateContentType)
	r.Use(sm.LimitBodySize)
	r.POST("/score", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestSecurityHeaders(t *testing.T) {
	r := securedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
}

func TestValidateContentTypeRejectsNonJSON(t *testing.T) {
	r := securedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewBufferString("<xml/>"))
	req.Header.Set("Content-Type", "application/xml")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestValidateContentTypeAcceptsJSON(t *testing.T) {
	r := securedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewBufferString(`{"tags":[]}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidateContentTypeIgnoresGET(t *testing.T) {
	r := securedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Content-Type", "text/plain")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
