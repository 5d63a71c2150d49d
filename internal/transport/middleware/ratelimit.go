package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// bucketIdleEviction is how long a client bucket may sit unused before
// the cleanup loop drops it.
const bucketIdleEviction = 10 * time.Minute

// RateLimiter throttles HTTP requests per client IP with a token bucket.
// This guards the transport; the per-user review and beer-creation windows
// are enforced separately in the services.
type RateLimiter struct {
	clients sync.Map // ip -> *clientBucket
	stop    chan struct{}
}

type clientBucket struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	// perSecond is the refill rate.
	perSecond float64
	touched   time.Time
}

// NewRateLimiter creates a rate limiter whose background cleanup runs at
// the given interval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.evictIdle(cleanupInterval)
	return rl
}

// Stop terminates the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit returns middleware capping each client IP at maxPerMinute requests.
// Rejections carry a Retry-After header and a JSON error body.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	retryAfter := strconv.Itoa(int(60.0/float64(maxPerMinute)) + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b := rl.bucketFor(clientIP(r), maxPerMinute)
			if !b.take() {
				w.Header().Set("Retry-After", retryAfter)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "rate limit exceeded"}) //nolint:errcheck
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP keys buckets by host so a client reconnecting from a new source
// port keeps its bucket.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) bucketFor(key string, maxPerMinute int) *clientBucket {
	capacity := float64(maxPerMinute)

	val, _ := rl.clients.LoadOrStore(key, &clientBucket{
		tokens:    capacity,
		capacity:  capacity,
		perSecond: capacity / 60.0,
		touched:   time.Now(),
	})

	return val.(*clientBucket)
}

func (b *clientBucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.touched).Seconds() * b.perSecond
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.touched = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) evictIdle(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := time.Now()
			rl.clients.Range(func(key, value any) bool {
				b := value.(*clientBucket)
				b.mu.Lock()
				idle := now.Sub(b.touched)
				b.mu.Unlock()
				if idle > bucketIdleEviction {
					rl.clients.Delete(key)
				}
				return true
			})
		}
	}
}
