package postgres

import (
	"context"
	"errors"
	"fmt"

	"exchange-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// HoldingRepo implements ports.HoldingRepository. Holdings live in the
// properties table, keyed by (wallet_id, symbol).
type HoldingRepo struct {
	pool Pool
}

// NewHoldingRepo creates a new HoldingRepo.
func NewHoldingRepo(pool Pool) *HoldingRepo {
	return &HoldingRepo{pool: pool}
}

const holdingColumns = `wallet_id, symbol, unit_number, average_buy_price, created_at, updated_at`

func scanHolding(row pgx.Row) (*domain.Holding, error) {
	h := &domain.Holding{}
	err := row.Scan(&h.WalletID, &h.Symbol, &h.UnitNumber, &h.AverageBuyPrice, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return h, nil
}

// Get fetches a holding (non-locking).
func (r *HoldingRepo) Get(ctx context.Context, walletID uuid.UUID, symbol string) (*domain.Holding, error) {
	query := `SELECT ` + holdingColumns + ` FROM properties WHERE wallet_id = $1 AND symbol = $2`

	h, err := scanHolding(r.pool.QueryRow(ctx, query, walletID, symbol))
	if err != nil {
		return nil, fmt.Errorf("get holding: %w", err)
	}
	return h, nil
}

// GetForUpdate fetches a holding with pessimistic locking.
// This MUST be called within a transaction.
func (r *HoldingRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, symbol string) (*domain.Holding, error) {
	query := `SELECT ` + holdingColumns + ` FROM properties WHERE wallet_id = $1 AND symbol = $2 FOR UPDATE`

	h, err := scanHolding(tx.QueryRow(ctx, query, walletID, symbol))
	if err != nil {
		return nil, fmt.Errorf("get holding for update: %w", err)
	}
	return h, nil
}

// ListByWallet fetches all holdings of a wallet.
func (r *HoldingRepo) ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.Holding, error) {
	query := `SELECT ` + holdingColumns + ` FROM properties WHERE wallet_id = $1 ORDER BY symbol`

	rows, err := r.pool.Query(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("list holdings: %w", err)
	}
	defer rows.Close()

	var holdings []domain.Holding
	for rows.Next() {
		var h domain.Holding
		if err := rows.Scan(&h.WalletID, &h.Symbol, &h.UnitNumber, &h.AverageBuyPrice, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan holding: %w", err)
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

// Create inserts a new holding within a transaction.
func (r *HoldingRepo) Create(ctx context.Context, tx pgx.Tx, h *domain.Holding) error {
	query := `INSERT INTO properties (wallet_id, symbol, unit_number, average_buy_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query, h.WalletID, h.Symbol, h.UnitNumber, h.AverageBuyPrice, h.CreatedAt, h.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert holding: %w", err)
	}
	return nil
}

// Update rewrites a holding's units and average price within a transaction.
func (r *HoldingRepo) Update(ctx context.Context, tx pgx.Tx, h *domain.Holding) error {
	query := `UPDATE properties SET unit_number = $1, average_buy_price = $2, updated_at = $3
		WHERE wallet_id = $4 AND symbol = $5`

	tag, err := tx.Exec(ctx, query, h.UnitNumber, h.AverageBuyPrice, h.UpdatedAt, h.WalletID, h.Symbol)
	if err != nil {
		return fmt.Errorf("update holding: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update holding: %s/%s not found", h.WalletID, h.Symbol)
	}
	return nil
}

// Delete removes a fully liquidated holding within a transaction.
func (r *HoldingRepo) Delete(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, symbol string) error {
	query := `DELETE FROM properties WHERE wallet_id = $1 AND symbol = $2`

	_, err := tx.Exec(ctx, query, walletID, symbol)
	if err != nil {
		return fmt.Errorf("delete holding: %w", err)
	}
	return nil
}
