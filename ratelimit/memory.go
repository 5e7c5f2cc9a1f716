package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter counts publishes in process memory. The window starts when
// the process starts and restarts whenever a Check observes that it has
// elapsed. State does not survive a restart.
//
// Gin serves requests on parallel goroutines, so unlike a single-threaded
// event loop the counter needs a mutex.
type MemoryLimiter struct {
	mu sync.Mutex

	limit       int
	window      time.Duration
	count       int
	windowStart time.Time

	now func() time.Time // swapped in tests
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &MemoryLimiter{
		limit:       limit,
		window:      window,
		windowStart: time.Now(),
		now:         time.Now,
	}
}

func (l *MemoryLimiter) Check(ctx context.Context) (Status, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.windowStart) > l.window {
		l.count = 0
		l.windowStart = now
	}

	st := Status{ResetAt: l.windowStart.Add(l.window)}
	if l.count >= l.limit {
		return st, nil
	}
	st.Allowed = true
	st.Remaining = l.limit - l.count
	return st, nil
}

func (l *MemoryLimiter) Consume(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.count++
	return nil
}
