// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/integration/entrypoint/dto"
)

// window tracks the requests of one client inside the current window.
type window struct {
	count   int
	resetAt time.Time
}

// RateLimiter caps requests per client IP in fixed windows. It guards the
// reminder dispatch endpoint so a double-click cannot fan out duplicate emails.
type RateLimiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	limit    int
	interval time.Duration
	clock    adapter.Clock
}

// NewRateLimiter allows limit requests per interval per client. A limit of zero
// or less disables limiting.
func NewRateLimiter(limit int, interval time.Duration, clock adapter.Clock) *RateLimiter {
	if interval <= 0 {
		interval = time.Minute
	}
	return &RateLimiter{
		windows:  make(map[string]*window),
		limit:    limit,
		interval: interval,
		clock:    clock,
	}
}

// Middleware returns a Gin middleware handler that enforces the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limit <= 0 {
			c.Next()
			return
		}

		key := c.ClientIP()
		if key == "" {
			key = c.Request.RemoteAddr
		}

		if !rl.allow(key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clock.Now()

	w, ok := rl.windows[key]
	if !ok || !now.Before(w.resetAt) {
		rl.windows[key] = &window{count: 1, resetAt: now.Add(rl.interval)}
		return true
	}

	if w.count >= rl.limit {
		return false
	}
	w.count++
	return true
}

// Reset forgets every client.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.windows = make(map[string]*window)
}

// Cleanup drops expired windows.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clock.Now()
	for key, w := range rl.windows {
		if !now.Before(w.resetAt) {
			delete(rl.windows, key)
		}
	}
}
