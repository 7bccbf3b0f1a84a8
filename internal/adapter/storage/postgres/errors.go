package postgres

import (
	"errors"
	"fmt"

	"marketplace-ledger/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const (
	sqlstateUniqueViolation      = "23505"
	sqlstateSerializationFailure = "40001"
	sqlstateDeadlockDetected     = "40P01"
	sqlstateLockNotAvailable     = "55P03"

	pendingWithdrawalIndex = "uq_withdrawal_one_pending"
)

var errAdminBalanceMissing = errors.New("admin balance row missing")

// storeErr wraps err with op and tags failures that are safe to retry.
func storeErr(op string, err error) error {
	wrapped := fmt.Errorf("%s: %w", op, err)
	if isTransient(err) {
		return apperror.ErrTransientStore(wrapped)
	}
	return wrapped
}

func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlstateSerializationFailure, sqlstateDeadlockDetected, sqlstateLockNotAvailable:
			return true
		}
		return false
	}
	return pgconn.SafeToRetry(err) || pgconn.Timeout(err)
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == sqlstateUniqueViolation &&
		(constraint == "" || pgErr.ConstraintName == constraint)
}

func parseDecimal(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s %q: %w", field, raw, err)
	}
	return d, nil
}

func parseOptionalDecimal(field string, raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := parseDecimal(field, *raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
