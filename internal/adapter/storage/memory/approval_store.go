// Package memory holds process-local implementations of the OTP stores for
// single-instance deployments.
package memory

import (
	"context"
	"sync"
	"time"

	"marketplace-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
)

// ApprovalStore implements ports.ApprovalCodeStore on a ttlcache. Each code
// lives until its expiry plus the retention period.
type ApprovalStore struct {
	mu        sync.Mutex // serializes MarkUsed against Save and Sweep
	codes     *ttlcache.Cache[uuid.UUID, domain.ApprovalCode]
	retention time.Duration
	clock     func() time.Time
}

// NewApprovalStore creates an empty in-memory approval code store. clock
// dates the TTL of saved codes; nil means time.Now.
func NewApprovalStore(clock func() time.Time) *ApprovalStore {
	if clock == nil {
		clock = time.Now
	}
	return &ApprovalStore{
		codes: ttlcache.New[uuid.UUID, domain.ApprovalCode](
			ttlcache.WithDisableTouchOnHit[uuid.UUID, domain.ApprovalCode](),
		),
		retention: domain.ApprovalCodeRetention,
		clock:     clock,
	}
}

// Get returns a copy of the sale's code, or nil.
func (s *ApprovalStore) Get(_ context.Context, saleID uuid.UUID) (*domain.ApprovalCode, error) {
	item := s.codes.Get(saleID)
	if item == nil {
		return nil, nil
	}
	c := item.Value()
	return &c, nil
}

// Save replaces the sale's code. A code already past its retention is not
// kept.
func (s *ApprovalStore) Save(_ context.Context, code *domain.ApprovalCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ttl := code.ExpiresAt.Add(s.retention).Sub(s.clock())
	if ttl <= 0 {
		s.codes.Delete(code.SaleID)
		return nil
	}
	s.codes.Set(code.SaleID, *code, ttl)
	return nil
}

// MarkUsed flips Used under the lock if the digits match an unused code.
func (s *ApprovalStore) MarkUsed(_ context.Context, saleID uuid.UUID, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.codes.Get(saleID)
	if item == nil {
		return false, nil
	}
	c := item.Value()
	if c.Used || !c.Matches(code) {
		return false, nil
	}
	c.Used = true
	s.codes.Set(saleID, c, ttlcache.PreviousOrDefaultTTL)
	return true, nil
}

// Sweep drops codes whose retention ended before now, plus any the cache
// already holds as expired.
func (s *ApprovalStore) Sweep(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.codes.Metrics().Evictions
	for id, item := range s.codes.Items() {
		if item.Value().ExpiresAt.Add(s.retention).Before(now) {
			s.codes.Delete(id)
		}
	}
	s.codes.DeleteExpired()
	return int(s.codes.Metrics().Evictions - before), nil
}
