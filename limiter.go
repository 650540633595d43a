package pubshell

import (
	"sync"
	"time"
)

// ToggleLimiter rate-limits theme changes per IP address.
type ToggleLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	max      int
	window   time.Duration
	stop     chan struct{}
	once     sync.Once
}

// NewToggleLimiter creates a ToggleLimiter that allows max changes per window.
func NewToggleLimiter(max int, window time.Duration) *ToggleLimiter {
	l := &ToggleLimiter{
		attempts: make(map[string][]time.Time),
		max:      max,
		window:   window,
		stop:     make(chan struct{}),
	}
	go l.cleanup()
	return l
}

func (l *ToggleLimiter) cleanup() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
		}
		cutoff := time.Now().Add(-l.window)
		l.mu.Lock()
		for ip, hits := range l.attempts {
			kept := prune(hits, cutoff)
			if len(kept) == 0 {
				delete(l.attempts, ip)
			} else {
				l.attempts[ip] = kept
			}
		}
		l.mu.Unlock()
	}
}

// Allow records a change for ip and reports whether it is within the limit.
func (l *ToggleLimiter) Allow(ip string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := prune(l.attempts[ip], now.Add(-l.window))
	if len(kept) >= l.max {
		l.attempts[ip] = kept
		return false
	}
	l.attempts[ip] = append(kept, now)
	return true
}

// Stop ends the background cleanup.
func (l *ToggleLimiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

func prune(hits []time.Time, cutoff time.Time) []time.Time {
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}
