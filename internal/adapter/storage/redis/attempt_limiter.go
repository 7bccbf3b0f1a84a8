package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"marketplace-ledger/config"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const maxWatchRetries = 3

// AttemptLimiter implements ports.AttemptLimiter with a sorted set per sale
// for the rolling request window and a counter plus lock key for failed
// confirmations. Scores and lock values are unix milliseconds taken from the
// caller's clock.
type AttemptLimiter struct {
	client      goredis.UniversalClient
	prefix      string
	maxRequests int
	window      time.Duration
	maxFailures int
	lockout     time.Duration
}

// NewAttemptLimiter creates a Redis-backed limiter from the OTP settings.
func NewAttemptLimiter(client goredis.UniversalClient, cfg config.OTPConfig) *AttemptLimiter {
	return &AttemptLimiter{
		client:      client,
		prefix:      "approval:",
		maxRequests: cfg.MaxRequestsPerHour,
		window:      cfg.RequestWindow,
		maxFailures: cfg.MaxAttempts,
		lockout:     cfg.Lockout,
	}
}

func (l *AttemptLimiter) requestsKey(saleID uuid.UUID) string {
	return l.prefix + "req:" + saleID.String()
}

func (l *AttemptLimiter) failuresKey(saleID uuid.UUID) string {
	return l.prefix + "fail:" + saleID.String()
}

func (l *AttemptLimiter) lockKey(saleID uuid.UUID) string {
	return l.prefix + "lock:" + saleID.String()
}

// AllowRequest records one code request when fewer than maxRequests fall
// inside the window ending at now.
func (l *AttemptLimiter) AllowRequest(ctx context.Context, saleID uuid.UUID, now time.Time) (bool, time.Duration, error) {
	key := l.requestsKey(saleID)
	cutoff := now.Add(-l.window).UnixMilli()

	var (
		allowed    bool
		retryAfter time.Duration
	)
	txf := func(tx *goredis.Tx) error {
		recent, err := tx.ZRangeByScoreWithScores(ctx, key, &goredis.ZRangeBy{
			Min: "(" + strconv.FormatInt(cutoff, 10),
			Max: "+inf",
		}).Result()
		if err != nil {
			return err
		}
		if len(recent) >= l.maxRequests {
			oldest := time.UnixMilli(int64(recent[0].Score))
			allowed, retryAfter = false, oldest.Add(l.window).Sub(now)
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(cutoff, 10))
			pipe.ZAdd(ctx, key, goredis.Z{Score: float64(now.UnixMilli()), Member: uuid.NewString()})
			pipe.PExpire(ctx, key, l.window)
			return nil
		})
		if err == nil {
			allowed, retryAfter = true, 0
		}
		return err
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := l.client.Watch(ctx, txf, key)
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		if err != nil {
			return false, 0, fmt.Errorf("redis approval request window: %w", err)
		}
		return allowed, retryAfter, nil
	}
	return false, 0, fmt.Errorf("redis approval request window: %w", goredis.TxFailedErr)
}

// LockedUntil returns the lockout end, or the zero time.
func (l *AttemptLimiter) LockedUntil(ctx context.Context, saleID uuid.UUID, now time.Time) (time.Time, error) {
	raw, err := l.client.Get(ctx, l.lockKey(saleID)).Int64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("redis approval lock: %w", err)
	}
	until := time.UnixMilli(raw)
	if !now.Before(until) {
		return time.Time{}, nil
	}
	return until, nil
}

// RecordFailure counts a failed confirmation and starts the lockout once
// maxFailures is reached. Each failure renews the counter's TTL, so the count
// is forgotten a lockout period after the last failure.
func (l *AttemptLimiter) RecordFailure(ctx context.Context, saleID uuid.UUID, now time.Time) (time.Time, error) {
	failKey := l.failuresKey(saleID)
	var incr *goredis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		incr = pipe.Incr(ctx, failKey)
		pipe.PExpire(ctx, failKey, l.lockout)
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("redis approval failure count: %w", err)
	}
	count := incr.Val()
	if count < int64(l.maxFailures) {
		return time.Time{}, nil
	}

	until := now.Add(l.lockout)
	_, err = l.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, l.lockKey(saleID), until.UnixMilli(), l.lockout)
		pipe.Del(ctx, failKey)
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("redis approval lockout: %w", err)
	}
	return until, nil
}

// Reset clears failures and any lockout after a successful confirmation.
func (l *AttemptLimiter) Reset(ctx context.Context, saleID uuid.UUID) error {
	if err := l.client.Del(ctx, l.failuresKey(saleID), l.lockKey(saleID)).Err(); err != nil {
		return fmt.Errorf("redis approval reset: %w", err)
	}
	return nil
}

// Sweep is a no-op; every key carries a TTL.
func (l *AttemptLimiter) Sweep(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}
