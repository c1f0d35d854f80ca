package middleware

import (
	pkgLog "solosync/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	RateLimitPerMin int
}

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
