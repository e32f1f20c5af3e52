package postgres

import (
	"context"
	"fmt"

	"exchange-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SpotTransactionRepo implements ports.SpotTransactionRepository.
// Rows are append-only; there is no update or delete.
type SpotTransactionRepo struct {
	pool Pool
}

// NewSpotTransactionRepo creates a new SpotTransactionRepo.
func NewSpotTransactionRepo(pool Pool) *SpotTransactionRepo {
	return &SpotTransactionRepo{pool: pool}
}

// Create appends a settlement record within a transaction.
func (r *SpotTransactionRepo) Create(ctx context.Context, tx pgx.Tx, txn *domain.SpotTransaction) error {
	query := `INSERT INTO spot_transactions (id, wallet_id, symbol, type, index_price, unit_numbers, amount, profit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		txn.ID, txn.WalletID, txn.Symbol, txn.Type,
		txn.IndexPrice, txn.UnitNumbers, txn.Amount, txn.Profit, txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert spot transaction: %w", err)
	}
	return nil
}

// ListByWallet fetches the wallet's most recent transactions, newest first.
func (r *SpotTransactionRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, limit int) ([]domain.SpotTransaction, error) {
	query := `SELECT id, wallet_id, symbol, type, index_price, unit_numbers, amount, profit, created_at
		FROM spot_transactions WHERE wallet_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, walletID, limit)
	if err != nil {
		return nil, fmt.Errorf("list spot transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.SpotTransaction
	for rows.Next() {
		var t domain.SpotTransaction
		if err := rows.Scan(&t.ID, &t.WalletID, &t.Symbol, &t.Type, &t.IndexPrice, &t.UnitNumbers, &t.Amount, &t.Profit, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan spot transaction: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
