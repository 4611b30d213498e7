package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/cchtnn/doctor-appointment-multiagent/config"
	"github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
)

type Middleware struct {
	l       log.Logger
	config  config.RateLimitConfig
	limiter *subjectLimiter
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		config:  cfg,
		limiter: newSubjectLimiter(cfg.RequestsPerMin),
	}
}

// subjectLimiter keeps one token bucket per caller with auto-cleanup.
type subjectLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newSubjectLimiter(requestsPerMin int) *subjectLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &subjectLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique callers
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (sl *subjectLimiter) Allow(key string) bool {
	limiter, ok := sl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(sl.rate, sl.burst)
		sl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
