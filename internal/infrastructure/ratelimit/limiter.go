// Package ratelimit guards external API quota with a token-bucket limiter.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Config holds the limiter settings.
type Config struct {
	// RequestsPerSecond is the sustained request rate.
	RequestsPerSecond float64

	// BurstSize is the number of requests allowed to burst.
	BurstSize int
}

// DefaultConfig matches the free-tier quota of typical GDS sandboxes.
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 5,
		BurstSize:         10,
	}
}

// Limiter wraps a token-bucket limiter for one upstream host.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates a Limiter with the given config.
func New(cfg Config) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// Wait blocks until a request may proceed or the context ends.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow reports whether a request may proceed without blocking.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}
