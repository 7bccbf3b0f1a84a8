package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace-ledger/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

var errCodeNotUsable = errors.New("approval code not usable")

// ApprovalStore implements ports.ApprovalCodeStore for deployments running
// more than one instance. Codes live as JSON under one key per sale and
// expire on their own once the retention period has passed.
type ApprovalStore struct {
	client    goredis.UniversalClient
	prefix    string
	retention time.Duration
}

// NewApprovalStore creates a Redis-backed approval code store.
func NewApprovalStore(client goredis.UniversalClient) *ApprovalStore {
	return &ApprovalStore{
		client:    client,
		prefix:    "approval:code:",
		retention: domain.ApprovalCodeRetention,
	}
}

func (s *ApprovalStore) key(saleID uuid.UUID) string {
	return s.prefix + saleID.String()
}

// Get returns the latest code for the sale, or nil.
func (s *ApprovalStore) Get(ctx context.Context, saleID uuid.UUID) (*domain.ApprovalCode, error) {
	data, err := s.client.Get(ctx, s.key(saleID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get approval code: %w", err)
	}
	return decodeApprovalCode(data)
}

// Save replaces the sale's code.
func (s *ApprovalStore) Save(ctx context.Context, code *domain.ApprovalCode) error {
	data, err := json.Marshal(code)
	if err != nil {
		return fmt.Errorf("marshal approval code: %w", err)
	}
	ttl := code.ExpiresAt.Sub(code.CreatedAt) + s.retention
	if err := s.client.Set(ctx, s.key(code.SaleID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis save approval code: %w", err)
	}
	return nil
}

// MarkUsed flips the Used flag under WATCH so two confirmations racing on
// the same code cannot both succeed.
func (s *ApprovalStore) MarkUsed(ctx context.Context, saleID uuid.UUID, code string) (bool, error) {
	key := s.key(saleID)
	err := s.client.Watch(ctx, func(tx *goredis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, goredis.Nil) {
				return errCodeNotUsable
			}
			return err
		}
		stored, err := decodeApprovalCode(data)
		if err != nil {
			return err
		}
		if stored.Used || !stored.Matches(code) {
			return errCodeNotUsable
		}

		stored.Used = true
		updated, err := json.Marshal(stored)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.SetArgs(ctx, key, updated, goredis.SetArgs{KeepTTL: true})
			return nil
		})
		return err
	}, key)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errCodeNotUsable), errors.Is(err, goredis.TxFailedErr):
		return false, nil
	default:
		return false, fmt.Errorf("redis mark approval code used: %w", err)
	}
}

// Sweep is a no-op; Redis expires codes itself.
func (s *ApprovalStore) Sweep(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}

func decodeApprovalCode(data []byte) (*domain.ApprovalCode, error) {
	var c domain.ApprovalCode
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode approval code: %w", err)
	}
	return &c, nil
}
