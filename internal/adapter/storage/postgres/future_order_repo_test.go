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

func newTestFutureOrder(walletID uuid.UUID) *domain.FutureOrder {
	return &domain.FutureOrder{
		ID:           uuid.New(),
		WalletID:     walletID,
		Symbol:       "BTC",
		Side:         domain.FutureLong,
		EntryPrice:   decimal.NewFromInt(100),
		PositionSize: decimal.NewFromInt(10),
		Margin:       decimal.NewFromInt(200),
		Leverage:     5,
		OpenTS:       time.Now().UTC().Truncate(time.Microsecond),
	}
}

func futureOrderTestColumns() []string {
	return []string{"id", "wallet_id", "symbol", "side", "entry_price", "position_size", "margin", "leverage", "open_ts", "close_ts", "exit_price", "profit"}
}

func futureOrderRow(o *domain.FutureOrder) *pgxmock.Rows {
	return pgxmock.NewRows(futureOrderTestColumns()).AddRow(
		o.ID, o.WalletID, o.Symbol, o.Side,
		o.EntryPrice, o.PositionSize, o.Margin, o.Leverage,
		o.OpenTS, o.CloseTS, o.ExitPrice, o.Profit,
	)
}

func TestFutureOrderRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFutureOrderRepo(mock)
	o := newTestFutureOrder(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO future_orders").
		WithArgs(o.ID, o.WalletID, o.Symbol, o.Side, o.EntryPrice, o.PositionSize, o.Margin, o.Leverage, o.OpenTS).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.Create(context.Background(), tx, o))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFutureOrderRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFutureOrderRepo(mock)
	o := newTestFutureOrder(uuid.New())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM future_orders WHERE id = \\$1 FOR UPDATE").
		WithArgs(o.ID).
		WillReturnRows(futureOrderRow(o))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByIDForUpdate(context.Background(), tx, o.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsOpen())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFutureOrderRepo_Close(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFutureOrderRepo(mock)
	id := uuid.New()
	closeTS := time.Now().UTC()
	exit := decimal.NewFromInt(110)
	profit := decimal.NewFromInt(100)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE future_orders SET close_ts").
		WithArgs(closeTS, exit, profit, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.Close(context.Background(), tx, id, closeTS, exit, profit))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFutureOrderRepo_Close_AlreadyClosed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFutureOrderRepo(mock)
	id := uuid.New()
	closeTS := time.Now().UTC()
	exit := decimal.NewFromInt(110)
	profit := decimal.NewFromInt(100)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE future_orders SET close_ts").
		WithArgs(closeTS, exit, profit, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Close(context.Background(), tx, id, closeTS, exit, profit)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFutureOrderRepo_ListOpenByWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFutureOrderRepo(mock)
	walletID := uuid.New()
	o := newTestFutureOrder(walletID)

	mock.ExpectQuery("SELECT .+ FROM future_orders\\s+WHERE wallet_id = \\$1 AND close_ts IS NULL").
		WithArgs(walletID).
		WillReturnRows(futureOrderRow(o))

	orders, err := repo.ListOpenByWallet(context.Background(), walletID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].IsOpen())
	assert.NoError(t, mock.ExpectationsWereMet())
}
