package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"weev/config"
	"weev/internal/delivery/api/response"
	deliverycontext "weev/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	CodeRateLimited = "RATE_LIMITED"

	limiterIdleTTL = 10 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps a token bucket per authenticated user, falling back to the client IP.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rate      rate.Limit
	burst     int
	enabled   bool
	lastSweep time.Time
	now       func() time.Time
	logger    *slog.Logger
}

// NewRateLimiter builds the limiter from config. A missing or disabled section lets everything through.
func NewRateLimiter(cfg *config.Config, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		now:      time.Now,
		logger:   logger,
	}
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerSecond > 0 {
		rl.enabled = true
		rl.rate = rate.Limit(cfg.RateLimit.RequestsPerSecond)
		rl.burst = max(cfg.RateLimit.Burst, 1)
	}

	return rl
}

// Limit rejects requests beyond the caller's budget with 429.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !rl.enabled {
			return next(c)
		}

		key := c.RealIP()
		if principal, ok := deliverycontext.GetPrincipal(c); ok {
			key = principal.UserID.String()
		}

		if !rl.allow(key) {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), rl.logger).Warn("Rate limit exceeded",
				slog.String("key", key),
				slog.String("path", c.Path()),
			)

			return response.Error(c, http.StatusTooManyRequests, CodeRateLimited, "too many requests", nil)
		}

		return next(c)
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) > limiterIdleTTL {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) > limiterIdleTTL {
				delete(rl.visitors, k)
			}
		}
		rl.lastSweep = now
	}

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}
