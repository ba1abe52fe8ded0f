package middleware

import (
	"recurring-task-engine/pkg/log"
)

// Config holds the caller-facing security settings.
type Config struct {
	APIKey          string // empty disables the key check
	RateLimitPerMin int    // 0 disables rate limiting
}

type Middleware struct {
	l       log.Logger
	apiKey  string
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:      l,
		apiKey: cfg.APIKey,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
