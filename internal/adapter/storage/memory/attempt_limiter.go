package memory

import (
	"context"
	"sync"
	"time"

	"marketplace-ledger/config"

	"github.com/google/uuid"
)

type saleAttempts struct {
	requests    []time.Time // ascending
	failures    int
	lastFailure time.Time
	lockedUntil time.Time
}

// AttemptLimiter implements ports.AttemptLimiter in process memory.
type AttemptLimiter struct {
	mu          sync.Mutex
	sales       map[uuid.UUID]*saleAttempts
	maxRequests int
	window      time.Duration
	maxFailures int
	lockout     time.Duration
}

// NewAttemptLimiter creates an in-memory limiter from the OTP settings.
func NewAttemptLimiter(cfg config.OTPConfig) *AttemptLimiter {
	return &AttemptLimiter{
		sales:       make(map[uuid.UUID]*saleAttempts),
		maxRequests: cfg.MaxRequestsPerHour,
		window:      cfg.RequestWindow,
		maxFailures: cfg.MaxAttempts,
		lockout:     cfg.Lockout,
	}
}

func (l *AttemptLimiter) entry(saleID uuid.UUID) *saleAttempts {
	a, ok := l.sales[saleID]
	if !ok {
		a = &saleAttempts{}
		l.sales[saleID] = a
	}
	return a
}

// prune drops requests that left the window ending at now.
func (a *saleAttempts) prune(now time.Time, window time.Duration) {
	cutoff := now.Add(-window)
	i := 0
	for i < len(a.requests) && !a.requests[i].After(cutoff) {
		i++
	}
	a.requests = a.requests[i:]
}

// AllowRequest records one code request if the rolling window has room.
func (l *AttemptLimiter) AllowRequest(_ context.Context, saleID uuid.UUID, now time.Time) (bool, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a := l.entry(saleID)
	a.prune(now, l.window)
	if len(a.requests) >= l.maxRequests {
		return false, a.requests[0].Add(l.window).Sub(now), nil
	}
	a.requests = append(a.requests, now)
	return true, 0, nil
}

// LockedUntil returns the lockout end, or the zero time.
func (l *AttemptLimiter) LockedUntil(_ context.Context, saleID uuid.UUID, now time.Time) (time.Time, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.sales[saleID]
	if !ok || !now.Before(a.lockedUntil) {
		return time.Time{}, nil
	}
	return a.lockedUntil, nil
}

// RecordFailure counts one failed confirmation. Failures older than the
// lockout period are forgotten.
func (l *AttemptLimiter) RecordFailure(_ context.Context, saleID uuid.UUID, now time.Time) (time.Time, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a := l.entry(saleID)
	if a.failures > 0 && now.Sub(a.lastFailure) >= l.lockout {
		a.failures = 0
	}
	a.failures++
	a.lastFailure = now
	if a.failures < l.maxFailures {
		return time.Time{}, nil
	}
	a.failures = 0
	a.lockedUntil = now.Add(l.lockout)
	return a.lockedUntil, nil
}

// Reset clears failures and any lockout. The request window is kept.
func (l *AttemptLimiter) Reset(_ context.Context, saleID uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if a, ok := l.sales[saleID]; ok {
		a.failures = 0
		a.lockedUntil = time.Time{}
	}
	return nil
}

// Sweep forgets sales with no recent requests, failures or lockout.
func (l *AttemptLimiter) Sweep(_ context.Context, now time.Time) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for id, a := range l.sales {
		a.prune(now, l.window)
		if a.failures > 0 && now.Sub(a.lastFailure) >= l.lockout {
			a.failures = 0
		}
		if len(a.requests) == 0 && a.failures == 0 && !now.Before(a.lockedUntil) {
			delete(l.sales, id)
			removed++
		}
	}
	return removed, nil
}
