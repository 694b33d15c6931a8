package middleware

import (
	"time"

	"inventory-service/pkg/log"
)

// RateLimitConfig bounds how many requests a single client may issue.
type RateLimitConfig struct {
	Enabled    bool
	PerMin     int
	Burst      int
	MaxClients int
	TTL        time.Duration
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. The rate limiter is only created when enabled.
func New(l log.Logger, rl RateLimitConfig) Middleware {
	m := Middleware{l: l}
	if rl.Enabled {
		m.limiter = newRateLimiter(rl)
	}
	return m
}
