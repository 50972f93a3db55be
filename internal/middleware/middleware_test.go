package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"atrova/config"
	"atrova/pkg/log"
)

func newTestEngine(m Middleware, mws ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mws...)
	r.GET("/ping", func(c *gin.Context) {
		sc, _ := GetScope(c)
		c.String(http.StatusOK, sc.UserID)
	})
	return r
}

func TestAuth(t *testing.T) {
	m := New(log.NewNop(), config.HTTPServerConfig{}, config.RateLimitConfig{})
	r := newTestEngine(m, m.Auth())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(OwnerHeader, "alice")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())
}

func TestRateLimit(t *testing.T) {
	m := New(log.NewNop(), config.HTTPServerConfig{}, config.RateLimitConfig{PerMin: 1, Burst: 2})
	r := newTestEngine(m, m.Auth(), m.RateLimit())

	do := func(owner string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(OwnerHeader, owner)
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("alice"))
	assert.Equal(t, http.StatusOK, do("alice"))
	assert.Equal(t, http.StatusTooManyRequests, do("alice"))
	assert.Equal(t, http.StatusOK, do("bob"))
}

func TestRateLimit_Disabled(t *testing.T) {
	m := New(log.NewNop(), config.HTTPServerConfig{}, config.RateLimitConfig{})
	r := newTestEngine(m, m.RateLimit())

	for range 5 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestCORSAndRequestID(t *testing.T) {
	m := New(log.NewNop(), config.HTTPServerConfig{AllowedOrigins: []string{"https://app.example"}}, config.RateLimitConfig{})
	r := newTestEngine(m, m.RequestID(), m.CORS())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://app.example")
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestSecretToken(t *testing.T) {
	m := New(log.NewNop(), config.HTTPServerConfig{}, config.RateLimitConfig{})

	do := func(r *gin.Engine, token string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if token != "" {
			req.Header.Set("X-Secret", token)
		}
		r.ServeHTTP(w, req)
		return w.Code
	}

	guarded := newTestEngine(m, m.SecretToken("X-Secret", "s3cret"))
	assert.Equal(t, http.StatusUnauthorized, do(guarded, ""))
	assert.Equal(t, http.StatusUnauthorized, do(guarded, "wrong"))
	assert.Equal(t, http.StatusOK, do(guarded, "s3cret"))

	open := newTestEngine(m, m.SecretToken("X-Secret", ""))
	assert.Equal(t, http.StatusOK, do(open, ""))
}
