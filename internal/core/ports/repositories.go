package ports

import (
	"context"
	"time"

	"exchange-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ListMerchants(ctx context.Context) ([]domain.User, error)
}

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx are used inside transaction blocks for
// pessimistic locking; balance mutation always requires a transaction.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	CreateTx(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error)
	GetByUserAndType(ctx context.Context, userID uuid.UUID, walletType domain.WalletType) (*domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error)
	GetByUserAndTypeForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID, walletType domain.WalletType) (*domain.Wallet, error)
	SetBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error
}

// HoldingRepository defines persistence operations for per-symbol holdings.
type HoldingRepository interface {
	Get(ctx context.Context, walletID uuid.UUID, symbol string) (*domain.Holding, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, symbol string) (*domain.Holding, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.Holding, error)
	Create(ctx context.Context, tx pgx.Tx, holding *domain.Holding) error
	Update(ctx context.Context, tx pgx.Tx, holding *domain.Holding) error
	Delete(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, symbol string) error
}

// SpotTransactionRepository persists the append-only spot audit trail.
type SpotTransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, txn *domain.SpotTransaction) error
	ListByWallet(ctx context.Context, walletID uuid.UUID, limit int) ([]domain.SpotTransaction, error)
}

// FutureOrderRepository defines persistence operations for futures positions.
type FutureOrderRepository interface {
	Create(ctx context.Context, tx pgx.Tx, order *domain.FutureOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FutureOrder, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.FutureOrder, error)
	Close(ctx context.Context, tx pgx.Tx, id uuid.UUID, closeTS time.Time, exitPrice, profit decimal.Decimal) error
	ListOpenByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.FutureOrder, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID, limit int) ([]domain.FutureOrder, error)
}

// BankAccountRepository defines persistence operations for bank accounts.
type BankAccountRepository interface {
	Create(ctx context.Context, account *domain.BankAccount) error
	GetByAccountNumber(ctx context.Context, accountNumber string) (*domain.BankAccount, error)
	GetByAccountNumberForUpdate(ctx context.Context, tx pgx.Tx, accountNumber string) (*domain.BankAccount, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.BankAccount, error)
	GetDefaultByUser(ctx context.Context, userID uuid.UUID) (*domain.BankAccount, error)
	ClearDefault(ctx context.Context, userID uuid.UUID) error
	SetBalance(ctx context.Context, tx pgx.Tx, accountNumber string, balance decimal.Decimal) error
	Delete(ctx context.Context, accountNumber string) error
}

// AccountTransactionRepository persists off-chain bank transfer records.
type AccountTransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, txn *domain.AccountTransaction) error
	ListByAccountNumber(ctx context.Context, accountNumber string, limit int) ([]domain.AccountTransaction, error)
}

// P2POrderRepository defines persistence operations for P2P orders.
type P2POrderRepository interface {
	Create(ctx context.Context, order *domain.P2POrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.P2POrder, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.P2POrder, error)
	UpdateState(ctx context.Context, tx pgx.Tx, id uuid.UUID, state domain.P2PState) error
	SetTransactionID(ctx context.Context, tx pgx.Tx, id uuid.UUID, transactionID uuid.UUID) error
	ListOpen(ctx context.Context, limit int) ([]domain.P2POrder, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.P2POrder, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
