package discord

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBidInterval is the minimum spacing between one user's bids
const DefaultBidInterval = 800 * time.Millisecond

// defaultPruneAt is the number of tracked users that triggers a sweep
const defaultPruneAt = 1024

// Throttle holds a token bucket per user
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	pruneAt  int
	limiters map[string]*throttleEntry
}

type throttleEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewThrottle creates a throttle allowing one action per interval per user
func NewThrottle(interval time.Duration) *Throttle {
	if interval <= 0 {
		interval = DefaultBidInterval
	}
	return &Throttle{
		interval: interval,
		pruneAt:  defaultPruneAt,
		limiters: make(map[string]*throttleEntry),
	}
}

// Allow reports whether the user may act now
func (t *Throttle) Allow(userID string) bool {
	now := time.Now()

	t.mu.Lock()
	entry, ok := t.limiters[userID]
	if !ok {
		if len(t.limiters) >= t.pruneAt {
			t.prune(now)
		}
		entry = &throttleEntry{limiter: rate.NewLimiter(rate.Every(t.interval), 1)}
		t.limiters[userID] = entry
	}
	entry.lastSeen = now
	t.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

// prune drops users idle for a full interval. Their buckets have refilled,
// so a fresh limiter behaves the same.
func (t *Throttle) prune(now time.Time) {
	for userID, entry := range t.limiters {
		if now.Sub(entry.lastSeen) >= t.interval {
			delete(t.limiters, userID)
		}
	}
}
