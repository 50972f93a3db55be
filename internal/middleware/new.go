package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"atrova/config"
	"atrova/pkg/log"
)

const (
	limiterCacheSize = 10_000
	limiterIdleTTL   = 10 * time.Minute
)

type Middleware struct {
	l              log.Logger
	allowedOrigins []string
	perMin         int
	burst          int
	limiters       *expirable.LRU[string, *rate.Limiter]
}

func New(l log.Logger, httpCfg config.HTTPServerConfig, rlCfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:              l,
		allowedOrigins: httpCfg.AllowedOrigins,
		perMin:         rlCfg.PerMin,
		burst:          rlCfg.Burst,
		limiters:       expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterIdleTTL),
	}
}
