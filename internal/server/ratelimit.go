package server

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"resumetric/internal/errors"

	"golang.org/x/time/rate"
)

// RateLimiter hands out one token bucket per rate-limit key (API key or
// client IP) and evicts buckets that sit idle for a full window.
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*rate.Limiter
	lastSeen map[string]time.Time
	limit    rate.Limit
	burst    int
	idleAge  time.Duration
	done     chan struct{}
	logger   *errors.Logger
}

// NewRateLimiter allows requestsPerMin sustained requests per key with bursts
// up to burstCapacity. window sets how long an idle key keeps its bucket
// before eviction; zero falls back to ten minutes.
func NewRateLimiter(requestsPerMin int, window time.Duration, burstCapacity int, logger *errors.Logger) *RateLimiter {
	if window <= 0 {
		window = 10 * time.Minute
	}
	rl := &RateLimiter{
		buckets:  make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
		limit:    rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burstCapacity,
		idleAge:  window,
		done:     make(chan struct{}),
		logger:   logger,
	}
	go rl.evictLoop()
	return rl
}

func (rl *RateLimiter) bucketFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok {
		b = rate.NewLimiter(rl.limit, rl.burst)
		rl.buckets[key] = b
	}
	rl.lastSeen[key] = time.Now()
	return b
}

// Allow reports whether the key has a token available right now. Never blocks.
func (rl *RateLimiter) Allow(key string) bool {
	return rl.bucketFor(key).Allow()
}

// GetStats reports the limiter configuration and active key count.
func (rl *RateLimiter) GetStats() map[string]any {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return map[string]any{
		"active_limiters": len(rl.buckets),
		"rate_per_second": float64(rl.limit),
		"rate_per_minute": float64(rl.limit) * 60.0,
		"burst_capacity":  rl.burst,
	}
}

func (rl *RateLimiter) evictLoop() {
	ticker := time.NewTicker(rl.idleAge)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle()
		case <-rl.done:
			return
		}
	}
}

// evictIdle drops buckets not seen within idleAge. An evicted key restarts
// with a full burst, which a bucket that old would have refilled to anyway.
func (rl *RateLimiter) evictIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-rl.idleAge)
	for key, seen := range rl.lastSeen {
		if seen.Before(cutoff) {
			delete(rl.buckets, key)
			delete(rl.lastSeen, key)
		}
	}

	if rl.logger != nil {
		rl.logger.Debug("Evicted idle rate limit buckets",
			"remaining_buckets", len(rl.buckets))
	}
}

// Close stops the eviction goroutine. Call once during server shutdown.
func (rl *RateLimiter) Close() {
	close(rl.done)
}

func (s *Server) rateLimitMiddleware() func(http.HandlerFunc) http.HandlerFunc {
	if s.RateLimit == nil || !s.RateLimit.Enabled {
		return func(next http.HandlerFunc) http.HandlerFunc { return next }
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			key := getRateLimitKey(r, s.RateLimit.ByAPIKey, s.RateLimit.ByIP)
			if key == "" {
				next(w, r)
				return
			}

			if !s.RateLimiter.Allow(key) {
				s.Logger.Info("Rate limit exceeded",
					"key", key,
					"endpoint", r.URL.Path,
					"client_ip", getClientIP(r))
				writeErrorResponse(w, "Rate limit exceeded", "Too many requests", http.StatusTooManyRequests)
				return
			}

			next(w, r)
		}
	}
}

// getRateLimitKey picks the per-caller bucket key. An authenticated API key
// wins over the client IP so one credential shares a budget across hosts.
func getRateLimitKey(r *http.Request, byAPIKey, byIP bool) string {
	if byAPIKey {
		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			if after, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
				apiKey = after
			}
		}
		if apiKey != "" {
			return "api:" + apiKey
		}
	}

	if byIP {
		return "ip:" + getClientIP(r)
	}

	return ""
}

// getClientIP resolves the client address, trusting proxy headers before
// falling back to the socket peer.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := firstValidIP(xff); ip != "" {
			return ip
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		if net.ParseIP(xri) != nil {
			return xri
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// firstValidIP returns the first parseable address in a comma-separated list.
func firstValidIP(ips string) string {
	for ip := range strings.SplitSeq(ips, ",") {
		ip = strings.TrimSpace(ip)
		if net.ParseIP(ip) != nil {
			return ip
		}
	}
	return ""
}
