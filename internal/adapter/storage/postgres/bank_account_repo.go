package postgres

import (
	"context"
	"errors"
	"fmt"

	"exchange-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BankAccountRepo implements ports.BankAccountRepository.
type BankAccountRepo struct {
	pool Pool
}

// NewBankAccountRepo creates a new BankAccountRepo.
func NewBankAccountRepo(pool Pool) *BankAccountRepo {
	return &BankAccountRepo{pool: pool}
}

const bankAccountColumns = `id, account_number, bank_name, user_id, account_balance, is_default, created_at`

func scanBankAccount(row pgx.Row) (*domain.BankAccount, error) {
	a := &domain.BankAccount{}
	err := row.Scan(&a.ID, &a.AccountNumber, &a.BankName, &a.UserID, &a.AccountBalance, &a.IsDefault, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// Create inserts a new bank account.
func (r *BankAccountRepo) Create(ctx context.Context, a *domain.BankAccount) error {
	query := `INSERT INTO bank_accounts (id, account_number, bank_name, user_id, account_balance, is_default, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.AccountNumber, a.BankName, a.UserID, a.AccountBalance, a.IsDefault, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bank account: %w", err)
	}
	return nil
}

// GetByAccountNumber fetches an account by its number (non-locking).
func (r *BankAccountRepo) GetByAccountNumber(ctx context.Context, accountNumber string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE account_number = $1`

	a, err := scanBankAccount(r.pool.QueryRow(ctx, query, accountNumber))
	if err != nil {
		return nil, fmt.Errorf("get bank account: %w", err)
	}
	return a, nil
}

// GetByAccountNumberForUpdate fetches an account with pessimistic locking.
// This MUST be called within a transaction.
func (r *BankAccountRepo) GetByAccountNumberForUpdate(ctx context.Context, tx pgx.Tx, accountNumber string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE account_number = $1 FOR UPDATE`

	a, err := scanBankAccount(tx.QueryRow(ctx, query, accountNumber))
	if err != nil {
		return nil, fmt.Errorf("get bank account for update: %w", err)
	}
	return a, nil
}

// ListByUser fetches a user's accounts, oldest first.
func (r *BankAccountRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.BankAccount
	for rows.Next() {
		var a domain.BankAccount
		if err := rows.Scan(&a.ID, &a.AccountNumber, &a.BankName, &a.UserID, &a.AccountBalance, &a.IsDefault, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bank account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// GetDefaultByUser fetches the user's default account, falling back to the
// oldest account when no default is flagged.
func (r *BankAccountRepo) GetDefaultByUser(ctx context.Context, userID uuid.UUID) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts
		WHERE user_id = $1 ORDER BY is_default DESC, created_at ASC LIMIT 1`

	a, err := scanBankAccount(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("get default bank account: %w", err)
	}
	return a, nil
}

// ClearDefault unsets the default flag on all of the user's accounts.
func (r *BankAccountRepo) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE bank_accounts SET is_default = FALSE WHERE user_id = $1 AND is_default`

	_, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("clear default bank account: %w", err)
	}
	return nil
}

// SetBalance updates an account's balance within a transaction.
func (r *BankAccountRepo) SetBalance(ctx context.Context, tx pgx.Tx, accountNumber string, balance decimal.Decimal) error {
	query := `UPDATE bank_accounts SET account_balance = $1 WHERE account_number = $2`

	tag, err := tx.Exec(ctx, query, balance, accountNumber)
	if err != nil {
		return fmt.Errorf("update bank account balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update bank account balance: %s not found", accountNumber)
	}
	return nil
}

// Delete removes an account by number.
func (r *BankAccountRepo) Delete(ctx context.Context, accountNumber string) error {
	query := `DELETE FROM bank_accounts WHERE account_number = $1`

	_, err := r.pool.Exec(ctx, query, accountNumber)
	if err != nil {
		return fmt.Errorf("delete bank account: %w", err)
	}
	return nil
}
