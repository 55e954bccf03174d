package chi

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/handlers/http/dto"
	"github.com/Charlelielataste/escoffier-gallery/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

const (
	maxTrackedClients = 10_000
	clientIdleTimeout = 10 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a per client IP request limit to the write endpoints
type RateLimiter struct {
	perIP map[string]*clientLimiter
	mu    sync.Mutex
	rps   rate.Limit
	burst int
	now   func() time.Time
}

// NewRateLimiter creates a limiter from cfg
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		perIP: make(map[string]*clientLimiter),
		rps:   rate.Limit(cfg.RequestsPerSecond),
		burst: cfg.Burst,
		now:   time.Now,
	}
}

// Middleware rejects requests over the limit with 429, counting them on dropped
func (l *RateLimiter) Middleware(dropped prometheus.Counter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.allow(clientIP(r)) {
				dropped.Inc()
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(dto.Error{Error: "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (l *RateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	item, ok := l.perIP[ip]
	if !ok {
		item = &clientLimiter{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.perIP[ip] = item
	}
	item.lastSeen = now

	if len(l.perIP) > maxTrackedClients {
		l.cleanupLocked(now.Add(-clientIdleTimeout))
	}

	return item.limiter.AllowN(now, 1)
}

func (l *RateLimiter) cleanupLocked(threshold time.Time) {
	for ip, entry := range l.perIP {
		if entry.lastSeen.Before(threshold) {
			delete(l.perIP, ip)
		}
	}
}

// clientIP expects middleware.RealIP to have resolved forwarded headers into RemoteAddr
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
