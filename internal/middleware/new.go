package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"cognitive-router/pkg/log"
)

// Config tunes the HTTP middlewares.
type Config struct {
	RequestsPerMin int // per client; 0 disables rate limiting
	MaxClients     int // tracked limiter entries
	ClientTTL      time.Duration
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg)
	}
	return mw
}

// rateLimiter keeps one token bucket per client; idle clients expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(cfg Config) *rateLimiter {
	size := cfg.MaxClients
	if size <= 0 {
		size = 1000
	}
	ttl := cfg.ClientTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	burst := cfg.RequestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](size, nil, ttl),
		rate:     rate.Limit(float64(cfg.RequestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
