package middleware

import (
	"hybrid-nlu-gateway/pkg/log"
)

// Middleware bundles the HTTP middlewares the server mounts.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, requestsPerMin int) *Middleware {
	m := &Middleware{l: l}
	if requestsPerMin > 0 {
		m.limiter = newRateLimiter(requestsPerMin)
	}
	return m
}
