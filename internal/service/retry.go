package service

import (
	"context"
	"fmt"
	"time"

	"marketplace-ledger/internal/core/ports"
	"marketplace-ledger/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// txRunner re-runs a whole transactional unit when the store aborts it
// under contention. Non-transient errors are returned on the first try.
type txRunner struct {
	transactor ports.DBTransactor
	attempts   int
	backoff    time.Duration
	metrics    ports.LedgerMetrics
	log        zerolog.Logger
}

// TxPolicy configures retries of aborted transactions.
type TxPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

func newTxRunner(transactor ports.DBTransactor, policy TxPolicy, metrics ports.LedgerMetrics, log zerolog.Logger) txRunner {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return txRunner{
		transactor: transactor,
		attempts:   policy.MaxAttempts,
		backoff:    policy.Backoff,
		metrics:    metrics,
		log:        log,
	}
}

// run executes fn in a transaction. Exhausted retries surface as
// SettlementUnavailable.
func (r txRunner) run(ctx context.Context, op string, fn func(tx pgx.Tx) error) error {
	var lastErr error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		err := r.transactor.WithinTx(ctx, fn)
		if err == nil {
			return nil
		}
		if !apperror.IsKind(err, apperror.KindTransient) {
			return err
		}
		lastErr = err
		if attempt == r.attempts {
			break
		}

		r.metrics.TxRetried(op)
		r.log.Warn().Err(err).Str("op", op).Int("attempt", attempt).Msg("transaction aborted, retrying")

		select {
		case <-ctx.Done():
			return apperror.ErrSettlementUnavailable(ctx.Err())
		case <-time.After(r.backoff * time.Duration(attempt)):
		}
	}

	r.log.Error().Err(lastErr).Str("op", op).Int("attempts", r.attempts).Msg("transaction retries exhausted")
	return apperror.ErrSettlementUnavailable(fmt.Errorf("%s: %w", op, lastErr))
}

// internalErr passes AppErrors through and wraps anything else.
func internalErr(op string, err error) error {
	if _, ok := apperror.As(err); ok {
		return err
	}
	return apperror.InternalError(fmt.Errorf("%s: %w", op, err))
}
