package bootstrap

import "golang.org/x/time/rate"

// Limiter adapts a token bucket to the ratelimit interceptor.
type Limiter struct {
	l *rate.Limiter
}

// NewLimiter allows limit requests per second with the given burst.
func NewLimiter(cfg RateLimitConfig) *Limiter {
	return &Limiter{rate.NewLimiter(rate.Limit(cfg.Limit), cfg.Burst)}
}

// Limit reports whether the current request must be rejected.
func (l *Limiter) Limit() bool {
	return !l.l.Allow()
}
