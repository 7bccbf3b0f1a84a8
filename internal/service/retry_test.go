package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-ledger/internal/core/ports/mocks"
	"marketplace-ledger/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupTxRunner(t *testing.T, attempts int) (txRunner, *mocks.MockDBTransactor, *mocks.MockLedgerMetrics) {
	ctrl := gomock.NewController(t)
	transactor := mocks.NewMockDBTransactor(ctrl)
	m := mocks.NewMockLedgerMetrics(ctrl)
	r := newTxRunner(transactor, TxPolicy{MaxAttempts: attempts, Backoff: time.Millisecond}, m, newTestLogger())
	return r, transactor, m
}

func runFn(ctx context.Context, fn func(pgx.Tx) error) error { return fn(&mockTx{}) }

func TestTxRunner_SucceedsFirstTry(t *testing.T) {
	r, transactor, _ := setupTxRunner(t, 3)

	transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runFn)

	calls := 0
	err := r.run(context.Background(), "op", func(pgx.Tx) error { calls++; return nil })
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestTxRunner_RetriesTransientErrors(t *testing.T) {
	r, transactor, m := setupTxRunner(t, 3)

	transient := apperror.ErrTransientStore(errors.New("40001"))
	gomock.InOrder(
		transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Return(transient),
		transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Return(transient),
		transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Return(nil),
	)
	m.EXPECT().TxRetried("approve_sale").Times(2)

	assert.NoError(t, r.run(context.Background(), "approve_sale", func(pgx.Tx) error { return nil }))
}

func TestTxRunner_ExhaustionIsSettlementUnavailable(t *testing.T) {
	r, transactor, m := setupTxRunner(t, 3)

	transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		Return(apperror.ErrTransientStore(errors.New("40P01"))).Times(3)
	m.EXPECT().TxRetried("decide_withdrawal").Times(2)

	err := r.run(context.Background(), "decide_withdrawal", func(pgx.Tx) error { return nil })
	assertAppError(t, err, "SYS_003")
	assert.True(t, apperror.IsKind(err, apperror.KindUnavailable))
}

func TestTxRunner_NonTransientReturnsImmediately(t *testing.T) {
	r, transactor, _ := setupTxRunner(t, 3)

	transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Return(apperror.ErrNotFound("sale")).Times(1)

	err := r.run(context.Background(), "op", func(pgx.Tx) error { return nil })
	assertAppError(t, err, "NF_001")
}

func TestTxRunner_StopsWhenContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	transactor := mocks.NewMockDBTransactor(ctrl)
	m := mocks.NewMockLedgerMetrics(ctrl)
	r := newTxRunner(transactor, TxPolicy{MaxAttempts: 3, Backoff: time.Hour}, m, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, func(pgx.Tx) error) error {
			cancel()
			return apperror.ErrTransientStore(errors.New("55P03"))
		},
	)
	m.EXPECT().TxRetried("op")

	err := r.run(ctx, "op", func(pgx.Tx) error { return nil })
	assertAppError(t, err, "SYS_003")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInternalErr(t *testing.T) {
	conflict := apperror.ErrPendingWithdrawalExists()
	assert.Same(t, conflict, internalErr("op", conflict))

	err := internalErr("get sale", errors.New("boom"))
	assertAppError(t, err, "SYS_001")
	assert.Contains(t, err.Error(), "get sale: boom")
}
