package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"
)

// window tracks one client's request count inside the current fixed window
type window struct {
	count   int
	resetAt time.Time
}

// Limiter is a fixed-window per-client rate limiter. The window resets fully
// at its boundary, so a client can burst across two adjacent windows; that
// trade-off is accepted in exchange for a predictable deny message.
type Limiter struct {
	mu      sync.Mutex
	clients map[string]*window
	max     int
	length  time.Duration
	now     func() time.Time
}

// New creates a limiter allowing max requests per window length
func New(max int, length time.Duration) *Limiter {
	return &Limiter{
		clients: make(map[string]*window),
		max:     max,
		length:  length,
		now:     time.Now,
	}
}

// Allow reports whether the client may proceed. When denied, retryAfter is
// the number of whole minutes remaining until the window resets, rounded up.
func (l *Limiter) Allow(key string) (allowed bool, retryAfter int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.clients[key]
	if !ok || !now.Before(w.resetAt) {
		l.clients[key] = &window{count: 1, resetAt: now.Add(l.length)}
		return true, 0
	}

	if w.count < l.max {
		w.count++
		return true, 0
	}

	return false, int(math.Ceil(w.resetAt.Sub(now).Minutes()))
}

// Max returns the configured per-window request quota
func (l *Limiter) Max() int {
	return l.max
}

// StartJanitor periodically evicts clients whose window lapsed more than one
// full window length ago, so the map does not grow without bound under many
// distinct client keys. Runs until ctx is cancelled.
func (l *Limiter) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.evictStale()
			}
		}
	}()
}

func (l *Limiter) evictStale() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.length)
	for key, w := range l.clients {
		if w.resetAt.Before(cutoff) {
			delete(l.clients, key)
		}
	}
}
