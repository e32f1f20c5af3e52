package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"exchange-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// FutureOrderRepo implements ports.FutureOrderRepository.
type FutureOrderRepo struct {
	pool Pool
}

// NewFutureOrderRepo creates a new FutureOrderRepo.
func NewFutureOrderRepo(pool Pool) *FutureOrderRepo {
	return &FutureOrderRepo{pool: pool}
}

const futureOrderColumns = `id, wallet_id, symbol, side, entry_price, position_size, margin, leverage, open_ts, close_ts, exit_price, profit`

func scanFutureOrder(row pgx.Row) (*domain.FutureOrder, error) {
	o := &domain.FutureOrder{}
	err := row.Scan(
		&o.ID, &o.WalletID, &o.Symbol, &o.Side,
		&o.EntryPrice, &o.PositionSize, &o.Margin, &o.Leverage,
		&o.OpenTS, &o.CloseTS, &o.ExitPrice, &o.Profit,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return o, nil
}

// Create inserts an open position within a transaction.
func (r *FutureOrderRepo) Create(ctx context.Context, tx pgx.Tx, o *domain.FutureOrder) error {
	query := `INSERT INTO future_orders (id, wallet_id, symbol, side, entry_price, position_size, margin, leverage, open_ts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		o.ID, o.WalletID, o.Symbol, o.Side,
		o.EntryPrice, o.PositionSize, o.Margin, o.Leverage, o.OpenTS,
	)
	if err != nil {
		return fmt.Errorf("insert future order: %w", err)
	}
	return nil
}

// GetByID fetches an order (non-locking).
func (r *FutureOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FutureOrder, error) {
	query := `SELECT ` + futureOrderColumns + ` FROM future_orders WHERE id = $1`

	o, err := scanFutureOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get future order: %w", err)
	}
	return o, nil
}

// GetByIDForUpdate fetches an order with pessimistic locking.
// This MUST be called within a transaction.
func (r *FutureOrderRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.FutureOrder, error) {
	query := `SELECT ` + futureOrderColumns + ` FROM future_orders WHERE id = $1 FOR UPDATE`

	o, err := scanFutureOrder(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get future order for update: %w", err)
	}
	return o, nil
}

// Close sets the close fields of an open order within a transaction. The
// close_ts IS NULL guard makes a second close a no-op at the SQL level.
func (r *FutureOrderRepo) Close(ctx context.Context, tx pgx.Tx, id uuid.UUID, closeTS time.Time, exitPrice, profit decimal.Decimal) error {
	query := `UPDATE future_orders SET close_ts = $1, exit_price = $2, profit = $3
		WHERE id = $4 AND close_ts IS NULL`

	tag, err := tx.Exec(ctx, query, closeTS, exitPrice, profit, id)
	if err != nil {
		return fmt.Errorf("close future order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("close future order: %s not open", id)
	}
	return nil
}

// ListOpenByWallet fetches the wallet's open positions, newest first.
func (r *FutureOrderRepo) ListOpenByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.FutureOrder, error) {
	query := `SELECT ` + futureOrderColumns + ` FROM future_orders
		WHERE wallet_id = $1 AND close_ts IS NULL ORDER BY open_ts DESC`

	rows, err := r.pool.Query(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("list open future orders: %w", err)
	}
	defer rows.Close()
	return collectFutureOrders(rows)
}

// ListByWallet fetches the wallet's most recent orders, open and closed.
func (r *FutureOrderRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, limit int) ([]domain.FutureOrder, error) {
	query := `SELECT ` + futureOrderColumns + ` FROM future_orders
		WHERE wallet_id = $1 ORDER BY open_ts DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, walletID, limit)
	if err != nil {
		return nil, fmt.Errorf("list future orders: %w", err)
	}
	defer rows.Close()
	return collectFutureOrders(rows)
}

func collectFutureOrders(rows pgx.Rows) ([]domain.FutureOrder, error) {
	var orders []domain.FutureOrder
	for rows.Next() {
		var o domain.FutureOrder
		if err := rows.Scan(
			&o.ID, &o.WalletID, &o.Symbol, &o.Side,
			&o.EntryPrice, &o.PositionSize, &o.Margin, &o.Leverage,
			&o.OpenTS, &o.CloseTS, &o.ExitPrice, &o.Profit,
		); err != nil {
			return nil, fmt.Errorf("scan future order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
