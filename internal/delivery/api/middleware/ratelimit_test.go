package middleware

import (
	"log/slog"
	"testing"
	"time"

	"weev/config"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, RequestsPerSecond: 1, Burst: 2}}
	rl := NewRateLimiter(cfg, slog.New(slog.DiscardHandler))

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.allow("u1"))
	assert.True(t, rl.allow("u1"))
	assert.False(t, rl.allow("u1"), "burst exhausted")
	assert.True(t, rl.allow("u2"), "buckets are per key")

	now = now.Add(time.Second)
	assert.True(t, rl.allow("u1"), "one token refilled")
}

func TestRateLimiter_SweepsIdleVisitors(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, RequestsPerSecond: 1, Burst: 1}}
	rl := NewRateLimiter(cfg, slog.New(slog.DiscardHandler))

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.allow("idle")
	rl.allow("busy")
	assert.Len(t, rl.visitors, 2)

	now = now.Add(limiterIdleTTL + time.Minute)
	rl.allow("busy")

	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "busy")
}

func TestRateLimiter_DisabledWithoutConfig(t *testing.T) {
	rl := NewRateLimiter(&config.Config{}, slog.New(slog.DiscardHandler))
	assert.False(t, rl.enabled)

	rl = NewRateLimiter(&config.Config{RateLimit: &config.RateLimitConfig{Enabled: true}}, slog.New(slog.DiscardHandler))
	assert.False(t, rl.enabled, "zero rate disables the limiter")
}
