package postgres

import (
	"context"
	"testing"
	"time"

	"marketplace-ledger/internal/core/domain"
	"marketplace-ledger/internal/core/ports"
	"marketplace-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withdrawalColumnNames() []string {
	return []string{
		"id", "vendor_id", "wallet_id", "amount", "admin_fee", "net_amount", "status",
		"method", "holder_name", "holder_contact", "notes", "payout_reference", "processed_by",
		"requested_at", "processed_at", "paid_at",
	}
}

func newTestWithdrawal() *domain.WithdrawalRequest {
	wallet := &domain.Wallet{ID: uuid.New()}
	holder := domain.WalletMethod{Method: domain.PaymentMethodMpesa, HolderName: "Ana Mussa", Contact: "841234567"}
	return domain.NewWithdrawalRequest(uuid.New(), wallet, holder,
		decimal.RequireFromString("100.00"), time.Now().UTC().Truncate(time.Microsecond))
}

func withdrawalRow(w *domain.WithdrawalRequest, status string) *pgxmock.Rows {
	return pgxmock.NewRows(withdrawalColumnNames()).AddRow(
		w.ID, w.VendorID, w.WalletID, "100.00", "5.00", "95.00", status,
		string(w.Method), w.HolderName, w.HolderContact, "", nil, nil,
		w.RequestedAt, nil, nil,
	)
}

func TestWithdrawalRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	w := newTestWithdrawal()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO withdrawal_requests").
		WithArgs(w.ID, w.VendorID, w.WalletID, w.Amount.String(), w.AdminFee.String(), w.NetAmount.String(),
			"PENDING", "MPESA", "Ana Mussa", "841234567", "", w.RequestedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.Create(context.Background(), tx, w))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepo_Create_SecondPendingConflicts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	w := newTestWithdrawal()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO withdrawal_requests").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_withdrawal_one_pending"})

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, w)
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, "CON_001"))
}

func TestWithdrawalRepo_FindPendingByVendor(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	w := newTestWithdrawal()

	mock.ExpectQuery("SELECT .+ FROM withdrawal_requests").
		WithArgs(w.VendorID, domain.WithdrawalStatusSpellings(domain.WithdrawalStatusPending)).
		WillReturnRows(withdrawalRow(w, "pendente"))

	got, err := repo.FindPendingByVendor(context.Background(), w.VendorID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.WithdrawalStatusPending, got.Status)
	assert.True(t, got.NetAmount.Equal(decimal.RequireFromString("95")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepo_FindPendingByVendor_None(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	vendorID := uuid.New()
	mock.ExpectQuery("SELECT .+ FROM withdrawal_requests").
		WithArgs(vendorID, pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	got, err := NewWithdrawalRepo(mock).FindPendingByVendor(context.Background(), vendorID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestWithdrawalRepo_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	w := newTestWithdrawal()
	admin := uuid.New()
	now := time.Now().UTC()
	w.Status = domain.WithdrawalStatusApproved
	w.ProcessedBy = &admin
	w.ProcessedAt = &now

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE withdrawal_requests").
		WithArgs(w.ID, "APPROVED", w.ProcessedBy, w.ProcessedAt, w.PaidAt, w.PayoutReference, w.Notes).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(context.Background(), tx, w))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	w := newTestWithdrawal()
	status := domain.WithdrawalStatusPending
	params := ports.WithdrawalListParams{Status: &status, Page: 2, PageSize: 10}
	spellings := domain.WithdrawalStatusSpellings(status)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(params.VendorID, spellings).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(11)))
	mock.ExpectQuery("SELECT .+ FROM withdrawal_requests").
		WithArgs(params.VendorID, spellings, 10, 10).
		WillReturnRows(withdrawalRow(w, "PENDING"))

	list, total, err := repo.List(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	require.Len(t, list, 1)
	assert.Equal(t, w.ID, list[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
