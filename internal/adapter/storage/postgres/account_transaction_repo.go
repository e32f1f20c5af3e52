package postgres

import (
	"context"
	"fmt"

	"exchange-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AccountTransactionRepo implements ports.AccountTransactionRepository.
// Rows are append-only.
type AccountTransactionRepo struct {
	pool Pool
}

// NewAccountTransactionRepo creates a new AccountTransactionRepo.
func NewAccountTransactionRepo(pool Pool) *AccountTransactionRepo {
	return &AccountTransactionRepo{pool: pool}
}

// Create appends a bank transfer record within a transaction.
func (r *AccountTransactionRepo) Create(ctx context.Context, tx pgx.Tx, txn *domain.AccountTransaction) error {
	query := `INSERT INTO account_transactions (id, source_account_number, target_account_number, transaction_amount, transaction_type, description, ts)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		txn.ID, txn.SourceAccountNumber, txn.TargetAccountNumber,
		txn.Amount, txn.TransactionType, txn.Description, txn.TS,
	)
	if err != nil {
		return fmt.Errorf("insert account transaction: %w", err)
	}
	return nil
}

// ListByAccountNumber fetches transfers where the account is source or
// target, newest first.
func (r *AccountTransactionRepo) ListByAccountNumber(ctx context.Context, accountNumber string, limit int) ([]domain.AccountTransaction, error) {
	query := `SELECT id, source_account_number, target_account_number, transaction_amount, transaction_type, description, ts
		FROM account_transactions
		WHERE source_account_number = $1 OR target_account_number = $1
		ORDER BY ts DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, accountNumber, limit)
	if err != nil {
		return nil, fmt.Errorf("list account transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.AccountTransaction
	for rows.Next() {
		var t domain.AccountTransaction
		if err := rows.Scan(&t.ID, &t.SourceAccountNumber, &t.TargetAccountNumber, &t.Amount, &t.TransactionType, &t.Description, &t.TS); err != nil {
			return nil, fmt.Errorf("scan account transaction: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
