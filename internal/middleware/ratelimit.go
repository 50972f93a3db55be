package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	pkgErrors "atrova/pkg/errors"
	"atrova/pkg/response"
)

// RateLimit applies a token bucket per caller, keyed by owner when known and client IP otherwise.
// Idle buckets expire from the LRU so the map stays bounded.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.perMin <= 0 {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if sc, ok := GetScope(c); ok {
			key = "owner:" + sc.UserID
		}

		if !m.limiter(key).Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %s throttled on %s", key, c.FullPath())
			response.Abort(c, pkgErrors.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

func (m Middleware) limiter(key string) *rate.Limiter {
	if lim, ok := m.limiters.Get(key); ok {
		return lim
	}
	burst := m.burst
	if burst <= 0 {
		burst = 1
	}
	lim := rate.NewLimiter(rate.Limit(float64(m.perMin)/60), burst)
	m.limiters.Add(key, lim)
	return lim
}
