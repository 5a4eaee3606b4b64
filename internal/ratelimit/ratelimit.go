// Package ratelimit admits or rejects clicks against a per-player sliding
// window. A rejected click is a pure no-op: the check runs before any state
// is touched.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter tracks recent hit timestamps per player. The capacity is passed
// per call because equipment and boosts can raise it between clicks.
type Limiter struct {
	mu     sync.Mutex
	window time.Duration
	hits   map[string][]time.Time
}

func NewLimiter(window time.Duration) *Limiter {
	return &Limiter{
		window: window,
		hits:   make(map[string][]time.Time),
	}
}

// Allow records a hit and returns true when the player is under the limit.
// Timestamps older than the window are discarded first; a rejected hit is
// not recorded.
func (l *Limiter) Allow(id string, now time.Time, limit int) bool {
	if limit < 1 {
		limit = 1
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.hits[id]
	cutoff := now.Add(-l.window)
	for len(recent) > 0 && !recent[0].After(cutoff) {
		recent = recent[1:]
	}

	if len(recent) >= limit {
		l.hits[id] = recent
		return false
	}

	l.hits[id] = append(recent, now)
	return true
}

// Reset forgets a player's recent hits
func (l *Limiter) Reset(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.hits, id)
}
