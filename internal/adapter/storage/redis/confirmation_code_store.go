package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ConfirmationCodeStore implements ports.ConfirmationCodeStore. Each code is
// its own key so a vendor may hold several unexpired codes at once.
type ConfirmationCodeStore struct {
	client goredis.UniversalClient
	prefix string
}

// NewConfirmationCodeStore creates a Redis-backed withdrawal code store.
func NewConfirmationCodeStore(client goredis.UniversalClient) *ConfirmationCodeStore {
	return &ConfirmationCodeStore{client: client, prefix: "wcode:"}
}

func (s *ConfirmationCodeStore) key(vendorID uuid.UUID, code string) string {
	return s.prefix + vendorID.String() + ":" + code
}

// Save stores code for ttl.
func (s *ConfirmationCodeStore) Save(ctx context.Context, vendorID uuid.UUID, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(vendorID, code), 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis save confirmation code: %w", err)
	}
	return nil
}

// Consume deletes the code. Redis has already dropped expired keys, so a
// successful DEL means the code was live and is now spent.
func (s *ConfirmationCodeStore) Consume(ctx context.Context, vendorID uuid.UUID, code string) (bool, error) {
	n, err := s.client.Del(ctx, s.key(vendorID, code)).Result()
	if err != nil {
		return false, fmt.Errorf("redis consume confirmation code: %w", err)
	}
	return n == 1, nil
}
