package postgres

import (
	"context"
	"testing"
	"time"

	"exchange-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHolding(walletID uuid.UUID) *domain.Holding {
	return &domain.Holding{
		WalletID:        walletID,
		Symbol:          "BTC",
		UnitNumber:      decimal.NewFromInt(4),
		AverageBuyPrice: decimal.NewFromInt(100),
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}
}

func holdingTestColumns() []string {
	return []string{"wallet_id", "symbol", "unit_number", "average_buy_price", "created_at", "updated_at"}
}

func holdingRow(h *domain.Holding) *pgxmock.Rows {
	return pgxmock.NewRows(holdingTestColumns()).AddRow(
		h.WalletID, h.Symbol, h.UnitNumber, h.AverageBuyPrice, h.CreatedAt, h.UpdatedAt,
	)
}

func TestHoldingRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHoldingRepo(mock)
	h := newTestHolding(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM properties WHERE wallet_id").
		WithArgs(h.WalletID, h.Symbol).
		WillReturnRows(holdingRow(h))

	result, err := repo.Get(context.Background(), h.WalletID, h.Symbol)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.UnitNumber.Equal(h.UnitNumber))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHoldingRepo_Get_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHoldingRepo(mock)
	walletID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM properties WHERE wallet_id").
		WithArgs(walletID, "ETH").
		WillReturnRows(pgxmock.NewRows(holdingTestColumns()))

	result, err := repo.Get(context.Background(), walletID, "ETH")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHoldingRepo_GetForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHoldingRepo(mock)
	h := newTestHolding(uuid.New())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM properties WHERE wallet_id = \\$1 AND symbol = \\$2 FOR UPDATE").
		WithArgs(h.WalletID, h.Symbol).
		WillReturnRows(holdingRow(h))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetForUpdate(context.Background(), tx, h.WalletID, h.Symbol)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHoldingRepo_CreateUpdateDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHoldingRepo(mock)
	h := newTestHolding(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO properties").
		WithArgs(h.WalletID, h.Symbol, h.UnitNumber, h.AverageBuyPrice, h.CreatedAt, h.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("UPDATE properties SET unit_number").
		WithArgs(h.UnitNumber, h.AverageBuyPrice, h.UpdatedAt, h.WalletID, h.Symbol).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("DELETE FROM properties").
		WithArgs(h.WalletID, h.Symbol).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.Create(context.Background(), tx, h))
	require.NoError(t, repo.Update(context.Background(), tx, h))
	require.NoError(t, repo.Delete(context.Background(), tx, h.WalletID, h.Symbol))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHoldingRepo_ListByWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHoldingRepo(mock)
	walletID := uuid.New()
	h := newTestHolding(walletID)

	rows := pgxmock.NewRows(holdingTestColumns()).
		AddRow(h.WalletID, "BTC", h.UnitNumber, h.AverageBuyPrice, h.CreatedAt, h.UpdatedAt).
		AddRow(h.WalletID, "ETH", decimal.NewFromInt(10), decimal.NewFromInt(20), h.CreatedAt, h.UpdatedAt)

	mock.ExpectQuery("SELECT .+ FROM properties WHERE wallet_id").
		WithArgs(walletID).
		WillReturnRows(rows)

	holdings, err := repo.ListByWallet(context.Background(), walletID)
	require.NoError(t, err)
	assert.Len(t, holdings, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
