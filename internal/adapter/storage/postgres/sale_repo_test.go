package postgres

import (
	"context"
	"testing"
	"time"

	"marketplace-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleColumnNames() []string {
	return []string{
		"id", "vendor_id", "reference", "gross_amount", "admin_share", "vendor_share",
		"status", "notes", "created_at", "updated_at", "approved_at",
	}
}

func TestSaleRepo_GetByID_LegacyStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSaleRepo(mock)
	id, vendorID := uuid.New(), uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)
	admin, vendor := "10.00", "90.00"

	mock.ExpectQuery("SELECT .+ FROM sales WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(saleColumnNames()).
			AddRow(id, vendorID, "ORD-1", "100.00", &admin, &vendor, "pago", "", now, now, &now))

	s, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, domain.SaleStatusSettled, s.Status)
	assert.True(t, s.GrossAmount.Equal(decimal.RequireFromString("100")))
	require.NotNil(t, s.VendorShare)
	assert.True(t, s.VendorShare.Equal(decimal.RequireFromString("90")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepo_GetByIDForUpdate_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSaleRepo(mock)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM sales WHERE id .+ FOR UPDATE").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	s, err := repo.GetByIDForUpdate(context.Background(), tx, id)
	assert.NoError(t, err)
	assert.Nil(t, s)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepo_MarkApproved(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSaleRepo(mock)
	now := time.Now().UTC()
	s := &domain.Sale{ID: uuid.New(), GrossAmount: decimal.RequireFromString("19.99"), Status: domain.SaleStatusPending}
	split := domain.SplitSale(s.GrossAmount)
	s.ApplySplit(split, now)
	s.AppendNote("approved by checkout")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE sales").
		WithArgs(s.ID, "APPROVED", split.Admin.String(), split.Vendor.String(), now, s.Notes).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.MarkApproved(context.Background(), tx, s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepo_MarkApproved_RequiresSplit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = NewSaleRepo(mock).MarkApproved(context.Background(), tx, &domain.Sale{ID: uuid.New()})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split not applied")
}

func TestSaleRepo_MarkApproved_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	s := &domain.Sale{ID: uuid.New(), GrossAmount: decimal.NewFromInt(5)}
	s.ApplySplit(domain.SplitSale(s.GrossAmount), now)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE sales").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = NewSaleRepo(mock).MarkApproved(context.Background(), tx, s)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sale not found")
}

func TestSaleRepo_ListByStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSaleRepo(mock)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM sales").
		WithArgs(domain.SaleStatusSpellings(domain.SaleStatusCancelled), 50).
		WillReturnRows(pgxmock.NewRows(saleColumnNames()).
			AddRow(uuid.New(), uuid.New(), "ORD-7", "40.00", nil, nil, "cancelada", "", now, now, nil).
			AddRow(uuid.New(), uuid.New(), "ORD-8", "12.50", nil, nil, "CANCELLED", "", now, now, nil))

	sales, err := repo.ListByStatus(context.Background(), domain.SaleStatusCancelled, 50)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	for _, s := range sales {
		assert.Equal(t, domain.SaleStatusCancelled, s.Status)
		assert.Nil(t, s.AdminShare)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
