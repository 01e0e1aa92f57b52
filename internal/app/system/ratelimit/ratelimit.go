// Package ratelimit throttles sign-in attempts per client address and per
// email using token buckets from golang.org/x/time/rate.
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/classment/internal/app/system/normalize"
	"golang.org/x/time/rate"
)

// Limiter keeps one token bucket per key. It is safe for concurrent use.
type Limiter struct {
	mu    sync.Mutex
	keys  map[string]*bucket
	every rate.Limit
	burst int
	idle  time.Duration
	now   func() time.Time

	lastSweep time.Time
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// New allows attempts per window for each key, refilling evenly.
func New(attempts int, per time.Duration) *Limiter {
	if attempts < 1 {
		attempts = 1
	}
	return &Limiter{
		keys:  make(map[string]*bucket),
		every: rate.Every(per / time.Duration(attempts)),
		burst: attempts,
		idle:  2 * per,
		now:   time.Now,
	}
}

// Allow spends one token for key. It reports false when the bucket is empty.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.keys[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.every, l.burst)}
		l.keys[key] = b
	}
	b.seen = now
	return b.lim.AllowN(now, 1)
}

// Reset forgets key, giving it a full bucket again.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.keys, key)
}

// sweep drops buckets idle long enough to have refilled. Caller holds mu.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idle {
		return
	}
	l.lastSweep = now
	for k, b := range l.keys {
		if now.Sub(b.seen) >= l.idle {
			delete(l.keys, k)
		}
	}
}

// ClientIP returns the host part of RemoteAddr. Only when trustProxy is set
// (the app runs behind a reverse proxy that overwrites these headers) does it
// prefer the first X-Forwarded-For hop, then X-Real-IP; a direct client can
// put anything in them.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if ip := forwardedIP(r); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func forwardedIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	return strings.TrimSpace(r.Header.Get("X-Real-IP"))
}

const (
	MsgTooManyFromClient = "Too many sign-in attempts. Please wait a minute before trying again."
	MsgTooManyForAccount = "Too many sign-in attempts for this account. Please wait a few minutes."
)

// LoginGuard combines a per-address and a per-email limiter.
type LoginGuard struct {
	byIP       *Limiter
	byEmail    *Limiter
	trustProxy bool
}

// NewLoginGuard allows 10 attempts per address per minute and 5 per email
// per 5 minutes. trustProxy is passed to ClientIP.
func NewLoginGuard(trustProxy bool) *LoginGuard {
	return &LoginGuard{
		byIP:       New(10, time.Minute),
		byEmail:    New(5, 5*time.Minute),
		trustProxy: trustProxy,
	}
}

// ClientIP is the address attempts are counted against.
func (g *LoginGuard) ClientIP(r *http.Request) string {
	return ClientIP(r, g.trustProxy)
}

// Check spends one attempt. When refused, the message is safe to show.
func (g *LoginGuard) Check(r *http.Request, email string) (bool, string) {
	if !g.byIP.Allow(g.ClientIP(r)) {
		return false, MsgTooManyFromClient
	}
	if key := normalize.Email(email); key != "" && !g.byEmail.Allow(key) {
		return false, MsgTooManyForAccount
	}
	return true, ""
}

// Forget clears the email's count after a successful sign-in.
func (g *LoginGuard) Forget(email string) {
	if key := normalize.Email(email); key != "" {
		g.byEmail.Reset(key)
	}
}
