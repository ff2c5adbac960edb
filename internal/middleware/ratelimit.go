package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// bucketIdleTTL is how long an idle client's limiter is kept
const bucketIdleTTL = 10 * time.Minute

// RateLimiter hands out one token bucket per client IP
type RateLimiter struct {
	limit rate.Limit
	burst int

	// trustForwarded keys buckets on X-Forwarded-For instead of the peer
	trustForwarded bool

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// NewRateLimiter allows perMinute events per client IP, with bursts of
// the same size. Set trustForwarded only behind a proxy that overwrites
// X-Forwarded-For; otherwise clients can pick their own bucket.
func NewRateLimiter(perMinute int, trustForwarded bool) *RateLimiter {
	return &RateLimiter{
		limit:          rate.Limit(float64(perMinute) / 60),
		burst:          perMinute,
		trustForwarded: trustForwarded,
		buckets:        make(map[string]*bucket),
		lastSweep:      time.Now(),
	}
}

// Allow reports whether the client may proceed now
func (l *RateLimiter) Allow(ip string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > bucketIdleTTL {
		for k, b := range l.buckets {
			if now.Sub(b.seen) > bucketIdleTTL {
				delete(l.buckets, k)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.buckets[ip]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[ip] = b
	}
	b.seen = now
	return b.lim.AllowN(now, 1)
}

// RateLimit rejects requests over the limit with the response written by
// onLimit. A nil limiter disables limiting.
func RateLimit(l *RateLimiter, onLimit http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(ClientIP(r, l.trustForwarded)) {
				onLimit(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP returns the peer address. With trustForwarded the first
// X-Forwarded-For entry wins when present.
func ClientIP(r *http.Request, trustForwarded bool) string {
	if xff := r.Header.Get("X-Forwarded-For"); trustForwarded && xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
