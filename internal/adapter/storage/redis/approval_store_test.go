package redis

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"marketplace-ledger/config"
	"marketplace-ledger/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	return s, client
}

func newApprovalCode(now time.Time) *domain.ApprovalCode {
	return &domain.ApprovalCode{
		SaleID:    uuid.New(),
		AdminID:   uuid.New(),
		Code:      "042917",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Minute),
	}
}

func TestApprovalStore_SaveAndGet(t *testing.T) {
	s, client := newTestClient(t)
	store := NewApprovalStore(client)
	ctx := context.Background()
	code := newApprovalCode(time.Now().UTC().Truncate(time.Millisecond))

	missing, err := store.Get(ctx, code.SaleID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, store.Save(ctx, code))

	got, err := store.Get(ctx, code.SaleID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, code.AdminID, got.AdminID)
	assert.True(t, got.ExpiresAt.Equal(code.ExpiresAt))

	// Kept past expiry for the retention period, then dropped.
	assert.Equal(t, time.Minute+domain.ApprovalCodeRetention, s.TTL("approval:code:"+code.SaleID.String()))
	s.FastForward(time.Minute + domain.ApprovalCodeRetention)
	got, err = store.Get(ctx, code.SaleID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestApprovalStore_MarkUsed_OnlyOnce(t *testing.T) {
	_, client := newTestClient(t)
	store := NewApprovalStore(client)
	ctx := context.Background()
	code := newApprovalCode(time.Now())
	require.NoError(t, store.Save(ctx, code))

	ok, err := store.MarkUsed(ctx, code.SaleID, "000000")
	require.NoError(t, err)
	assert.False(t, ok, "wrong digits must not consume the code")

	ok, err = store.MarkUsed(ctx, code.SaleID, code.Code)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.MarkUsed(ctx, code.SaleID, code.Code)
	require.NoError(t, err)
	assert.False(t, ok, "replay must fail")

	got, err := store.Get(ctx, code.SaleID)
	require.NoError(t, err)
	assert.True(t, got.Used)
}

func TestApprovalStore_MarkUsed_Concurrent(t *testing.T) {
	_, client := newTestClient(t)
	store := NewApprovalStore(client)
	ctx := context.Background()
	code := newApprovalCode(time.Now())
	require.NoError(t, store.Save(ctx, code))

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.MarkUsed(ctx, code.SaleID, code.Code)
			if err == nil && ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load())
}

func TestConfirmationCodeStore_Consume(t *testing.T) {
	s, client := newTestClient(t)
	store := NewConfirmationCodeStore(client)
	ctx := context.Background()
	vendorID := uuid.New()

	require.NoError(t, store.Save(ctx, vendorID, "551203", 10*time.Minute))

	ok, err := store.Consume(ctx, uuid.New(), "551203")
	require.NoError(t, err)
	assert.False(t, ok, "codes are bound to their vendor")

	ok, err = store.Consume(ctx, vendorID, "551203")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Consume(ctx, vendorID, "551203")
	require.NoError(t, err)
	assert.False(t, ok, "codes are single use")

	require.NoError(t, store.Save(ctx, vendorID, "778812", time.Minute))
	s.FastForward(2 * time.Minute)
	ok, err = store.Consume(ctx, vendorID, "778812")
	require.NoError(t, err)
	assert.False(t, ok, "expired codes are gone")
}

func testOTPConfig() config.OTPConfig {
	return config.OTPConfig{
		MaxRequestsPerHour: 3,
		RequestWindow:      time.Hour,
		MaxAttempts:        5,
		Lockout:            15 * time.Minute,
	}
}

func TestAttemptLimiter_RollingRequestWindow(t *testing.T) {
	_, client := newTestClient(t)
	l := NewAttemptLimiter(client, testOTPConfig())
	ctx := context.Background()
	saleID := uuid.New()
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		ok, _, err := l.AllowRequest(ctx, saleID, start.Add(time.Duration(i)*10*time.Minute))
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
	}

	ok, retryAfter, err := l.AllowRequest(ctx, saleID, start.Add(30*time.Minute))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 30*time.Minute, retryAfter)

	// The first request leaves the window after an hour.
	ok, _, err = l.AllowRequest(ctx, saleID, start.Add(time.Hour+time.Second))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAttemptLimiter_LockoutAfterFailures(t *testing.T) {
	_, client := newTestClient(t)
	l := NewAttemptLimiter(client, testOTPConfig())
	ctx := context.Background()
	saleID := uuid.New()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		until, err := l.RecordFailure(ctx, saleID, now)
		require.NoError(t, err)
		assert.True(t, until.IsZero())
	}

	until, err := l.RecordFailure(ctx, saleID, now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(15*time.Minute), until)

	locked, err := l.LockedUntil(ctx, saleID, now.Add(14*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, until, locked)

	locked, err = l.LockedUntil(ctx, saleID, now.Add(15*time.Minute))
	require.NoError(t, err)
	assert.True(t, locked.IsZero())

	require.NoError(t, l.Reset(ctx, saleID))
	locked, err = l.LockedUntil(ctx, saleID, now)
	require.NoError(t, err)
	assert.True(t, locked.IsZero())
}

func TestAttemptLimiter_FailureWindowRenewsOnEachFailure(t *testing.T) {
	s, client := newTestClient(t)
	l := NewAttemptLimiter(client, testOTPConfig())
	ctx := context.Background()
	saleID := uuid.New()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	failKey := "approval:fail:" + saleID.String()

	_, err := l.RecordFailure(ctx, saleID, now)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, s.TTL(failKey))

	s.FastForward(10 * time.Minute)
	for i := 0; i < 3; i++ {
		_, err = l.RecordFailure(ctx, saleID, now.Add(10*time.Minute))
		require.NoError(t, err)
	}
	assert.Equal(t, 15*time.Minute, s.TTL(failKey))

	// Twenty minutes after the first failure, ten after the last.
	s.FastForward(10 * time.Minute)
	until, err := l.RecordFailure(ctx, saleID, now.Add(20*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, now.Add(35*time.Minute), until)
	assert.False(t, s.Exists(failKey))
}

func TestAttemptLimiter_FailuresForgottenAfterQuietPeriod(t *testing.T) {
	s, client := newTestClient(t)
	l := NewAttemptLimiter(client, testOTPConfig())
	ctx := context.Background()
	saleID := uuid.New()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		_, err := l.RecordFailure(ctx, saleID, now)
		require.NoError(t, err)
	}

	s.FastForward(15 * time.Minute)
	until, err := l.RecordFailure(ctx, saleID, now.Add(15*time.Minute))
	require.NoError(t, err)
	assert.True(t, until.IsZero())

	v, err := s.Get("approval:fail:" + saleID.String())
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}
