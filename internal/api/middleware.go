package api

import (
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"careerportal/internal/utils"
)

// clientLimiter keeps one token bucket per client address.
type clientLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	now     func() time.Time
	clients map[string]*clientBucket
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiter(perSecond float64, burst int) *clientLimiter {
	return &clientLimiter{
		limit:   rate.Limit(perSecond),
		burst:   burst,
		now:     time.Now,
		clients: make(map[string]*clientBucket),
	}
}

func (c *clientLimiter) allow(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}
	now := c.now()
	c.mu.Lock()
	b, ok := c.clients[host]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(c.limit, c.burst)}
		c.clients[host] = b
	}
	b.lastSeen = now
	c.mu.Unlock()
	return b.limiter.AllowN(now, 1)
}

// sweep forgets clients not seen for idle and returns how many.
func (c *clientLimiter) sweep(idle time.Duration) int {
	cutoff := c.now().Add(-idle)
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for host, b := range c.clients {
		if b.lastSeen.Before(cutoff) {
			delete(c.clients, host)
			n++
		}
	}
	return n
}

func (c *clientLimiter) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.clients)
}

// SweepLimiters drops login limiters of clients idle for longer than idle.
func (h *Handler) SweepLimiters(idle time.Duration) {
	if n := h.logins.sweep(idle); n > 0 {
		h.logger.Debug("swept idle login limiters", zap.Int("count", n))
	}
}

func (h *Handler) limitLogins(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.logins.allow(r.RemoteAddr) {
			h.logger.Warn("login rate limited", zap.String("remote", r.RemoteAddr))
			h.writeError(w, utils.New(http.StatusTooManyRequests, "too many login attempts"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}
