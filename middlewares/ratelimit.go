package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"skillforge/models"
)

// RateLimitConfig defines per-client limits for generation endpoints.
// Generation calls are metered upstream, so abusive clients are cut off
// before they burn provider quota.
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
}

func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		MaxRequests: 30,
		Window:      time.Minute,
	}
}

// RateLimiter tracks request timestamps per client IP in a sliding
// window.
type RateLimiter struct {
	mu      sync.Mutex
	config  RateLimitConfig
	history map[string][]time.Time
	now     func() time.Time
}

func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		config:  config,
		history: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow records one request for the client and reports whether it is
// within the limit.
func (rl *RateLimiter) Allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.config.Window)

	recent := rl.history[client][:0]
	for _, t := range rl.history[client] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	if len(recent) >= rl.config.MaxRequests {
		rl.history[client] = recent
		return false
	}
	rl.history[client] = append(recent, now)
	return true
}

// Middleware rejects over-limit clients with 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				models.ErrorResponse("rate limit exceeded, try again later"))
			return
		}
		c.Next()
	}
}
