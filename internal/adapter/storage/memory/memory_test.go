package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"marketplace-ledger/config"
	"marketplace-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func testOTPConfig() config.OTPConfig {
	return config.OTPConfig{
		MaxRequestsPerHour: 3,
		RequestWindow:      time.Hour,
		MaxAttempts:        5,
		Lockout:            15 * time.Minute,
	}
}

func TestApprovalStore_GetReturnsCopy(t *testing.T) {
	store := NewApprovalStore(func() time.Time { return t0 })
	ctx := context.Background()
	code := &domain.ApprovalCode{SaleID: uuid.New(), AdminID: uuid.New(), Code: "123456", CreatedAt: t0, ExpiresAt: t0.Add(time.Minute)}
	require.NoError(t, store.Save(ctx, code))

	got, err := store.Get(ctx, code.SaleID)
	require.NoError(t, err)
	got.Used = true

	again, err := store.Get(ctx, code.SaleID)
	require.NoError(t, err)
	assert.False(t, again.Used)
}

func TestApprovalStore_MarkUsedConcurrent(t *testing.T) {
	store := NewApprovalStore(func() time.Time { return t0 })
	ctx := context.Background()
	code := &domain.ApprovalCode{SaleID: uuid.New(), AdminID: uuid.New(), Code: "123456", CreatedAt: t0, ExpiresAt: t0.Add(time.Minute)}
	require.NoError(t, store.Save(ctx, code))

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := store.MarkUsed(ctx, code.SaleID, "123456"); ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load())
}

func TestApprovalStore_SweepKeepsRecentlyExpired(t *testing.T) {
	store := NewApprovalStore(func() time.Time { return t0 })
	ctx := context.Background()
	code := &domain.ApprovalCode{SaleID: uuid.New(), Code: "123456", CreatedAt: t0, ExpiresAt: t0.Add(time.Minute)}
	require.NoError(t, store.Save(ctx, code))

	n, err := store.Sweep(ctx, t0.Add(2*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = store.Sweep(ctx, t0.Add(time.Minute+domain.ApprovalCodeRetention+time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := store.Get(ctx, code.SaleID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestApprovalStore_MarkUsedKeepsExpiry(t *testing.T) {
	store := NewApprovalStore(func() time.Time { return t0 })
	ctx := context.Background()
	code := &domain.ApprovalCode{SaleID: uuid.New(), Code: "123456", CreatedAt: t0, ExpiresAt: t0.Add(time.Minute)}
	require.NoError(t, store.Save(ctx, code))

	ok, err := store.MarkUsed(ctx, code.SaleID, "123456")
	require.NoError(t, err)
	require.True(t, ok)

	item := store.codes.Get(code.SaleID)
	require.NotNil(t, item)
	assert.True(t, item.Value().Used)
	assert.Equal(t, time.Minute+domain.ApprovalCodeRetention, item.TTL())
}

func TestApprovalStore_CodeEvictedAfterRetention(t *testing.T) {
	store := NewApprovalStore(nil)
	ctx := context.Background()
	now := time.Now()
	// Expired a moment less than the retention period ago.
	code := &domain.ApprovalCode{
		SaleID:    uuid.New(),
		Code:      "123456",
		CreatedAt: now.Add(-domain.ApprovalCodeRetention - time.Minute),
		ExpiresAt: now.Add(-domain.ApprovalCodeRetention + 300*time.Millisecond),
	}
	require.NoError(t, store.Save(ctx, code))

	got, err := store.Get(ctx, code.SaleID)
	require.NoError(t, err)
	require.NotNil(t, got, "expired code is retained")

	require.Eventually(t, func() bool {
		got, err := store.Get(ctx, code.SaleID)
		return err == nil && got == nil
	}, 2*time.Second, 10*time.Millisecond)

	n, err := store.Sweep(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestApprovalStore_SaveSkipsCodePastRetention(t *testing.T) {
	store := NewApprovalStore(func() time.Time { return t0.Add(time.Hour) })
	ctx := context.Background()
	code := &domain.ApprovalCode{SaleID: uuid.New(), Code: "123456", CreatedAt: t0, ExpiresAt: t0.Add(time.Minute)}
	require.NoError(t, store.Save(ctx, code))

	got, err := store.Get(ctx, code.SaleID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAttemptLimiter_RollingWindow(t *testing.T) {
	l := NewAttemptLimiter(testOTPConfig())
	ctx := context.Background()
	saleID := uuid.New()

	for i := 0; i < 3; i++ {
		ok, _, err := l.AllowRequest(ctx, saleID, t0.Add(time.Duration(i)*20*time.Minute))
		require.NoError(t, err)
		require.True(t, ok)
	}

	ok, retryAfter, err := l.AllowRequest(ctx, saleID, t0.Add(59*time.Minute))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Minute, retryAfter)

	ok, _, err = l.AllowRequest(ctx, saleID, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, ok, "request at exactly window end no longer counts the first")

	other, _, err := l.AllowRequest(ctx, uuid.New(), t0)
	require.NoError(t, err)
	assert.True(t, other)
}

func TestAttemptLimiter_Lockout(t *testing.T) {
	l := NewAttemptLimiter(testOTPConfig())
	ctx := context.Background()
	saleID := uuid.New()

	var until time.Time
	for i := 0; i < 5; i++ {
		var err error
		until, err = l.RecordFailure(ctx, saleID, t0.Add(time.Duration(i)*time.Second))
		require.NoError(t, err)
	}
	assert.Equal(t, t0.Add(4*time.Second+15*time.Minute), until)

	locked, err := l.LockedUntil(ctx, saleID, t0.Add(10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, until, locked)

	locked, err = l.LockedUntil(ctx, saleID, until)
	require.NoError(t, err)
	assert.True(t, locked.IsZero(), "lockout ends at its deadline")
}

func TestAttemptLimiter_StaleFailuresForgotten(t *testing.T) {
	l := NewAttemptLimiter(testOTPConfig())
	ctx := context.Background()
	saleID := uuid.New()

	for i := 0; i < 4; i++ {
		_, err := l.RecordFailure(ctx, saleID, t0)
		require.NoError(t, err)
	}
	until, err := l.RecordFailure(ctx, saleID, t0.Add(20*time.Minute))
	require.NoError(t, err)
	assert.True(t, until.IsZero())
}

func TestAttemptLimiter_ResetAndSweep(t *testing.T) {
	l := NewAttemptLimiter(testOTPConfig())
	ctx := context.Background()
	saleID := uuid.New()

	for i := 0; i < 5; i++ {
		_, err := l.RecordFailure(ctx, saleID, t0)
		require.NoError(t, err)
	}
	require.NoError(t, l.Reset(ctx, saleID))
	locked, err := l.LockedUntil(ctx, saleID, t0)
	require.NoError(t, err)
	assert.True(t, locked.IsZero())

	_, _, err = l.AllowRequest(ctx, saleID, t0)
	require.NoError(t, err)

	n, err := l.Sweep(ctx, t0.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, n, "request still inside the window")

	n, err = l.Sweep(ctx, t0.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
