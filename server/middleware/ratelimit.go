package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig configures per-key request rate limiting.
type RateLimitConfig struct {
	// RequestsPerMinute caps how many requests one key may make in any
	// sliding one-minute window.
	RequestsPerMinute int
	// KeyFunc derives the limiting key from a request. Nil means
	// client IP.
	KeyFunc func(*gin.Context) string
}

// RateLimit rejects requests over the per-key window limit with 429.
// Pipeline runs are expensive (remote generation), so the limit guards
// the upstream provider as much as this process.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 60
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}

	w := &slidingWindow{
		seen:  make(map[string][]time.Time),
		limit: cfg.RequestsPerMinute,
	}
	go w.sweep()

	return func(c *gin.Context) {
		if !w.allow(cfg.KeyFunc(c)) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}

type slidingWindow struct {
	mu    sync.Mutex
	seen  map[string][]time.Time
	limit int
}

func (w *slidingWindow) allow(key string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	recent := pruneBefore(w.seen[key], now.Add(-time.Minute))
	if len(recent) >= w.limit {
		w.seen[key] = recent
		return false
	}
	w.seen[key] = append(recent, now)
	return true
}

// sweep drops idle keys so one-off clients do not accumulate forever.
func (w *slidingWindow) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		w.mu.Lock()
		cutoff := time.Now().Add(-time.Minute)
		for key, times := range w.seen {
			if recent := pruneBefore(times, cutoff); len(recent) == 0 {
				delete(w.seen, key)
			} else {
				w.seen[key] = recent
			}
		}
		w.mu.Unlock()
	}
}

func pruneBefore(times []time.Time, cutoff time.Time) []time.Time {
	var recent []time.Time
	for _, t := range times {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	return recent
}
