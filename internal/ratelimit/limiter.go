// Package ratelimit provides fixed-window request counters keyed by
// (client, route). The counters are ephemeral in-process state and need
// no strong consistency; expired windows are reclaimed by a periodic
// sweep.
package ratelimit

import (
	"sync"
	"time"
)

type window struct {
	count   int
	resetAt time.Time
}

type Limiter struct {
	mu      sync.Mutex
	windows map[string]*window

	limit  int
	period time.Duration
}

func New(limit int, period time.Duration) *Limiter {
	return &Limiter{
		windows: make(map[string]*window),
		limit:   limit,
		period:  period,
	}
}

// Allow records one request for key and reports whether it fits the
// current window.
func (l *Limiter) Allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		l.windows[key] = &window{count: 1, resetAt: now.Add(l.period)}
		return true
	}

	w.count++
	return w.count <= l.limit
}

// Sweep drops expired windows and returns how many were removed.
func (l *Limiter) Sweep() int {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, w := range l.windows {
		if now.After(w.resetAt) {
			delete(l.windows, key)
			removed++
		}
	}

	return removed
}

// Size reports the number of live windows.
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}
