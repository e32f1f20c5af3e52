package ports

import (
	"context"
	"time"

	"exchange-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Service Ports (Business Logic) ---

// WalletService manages wallet creation and the pure read queries.
type WalletService interface {
	Create(ctx context.Context, userID uuid.UUID, walletType domain.WalletType) (*domain.Wallet, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error)
	GetByType(ctx context.Context, userID uuid.UUID, walletType domain.WalletType) (*domain.Wallet, error)
	GetWithHoldings(ctx context.Context, userID, walletID uuid.UUID) (*WalletWithHoldings, error)
}

// WalletWithHoldings is a wallet snapshot together with its positions.
type WalletWithHoldings struct {
	Wallet   domain.Wallet    `json:"wallet"`
	Holdings []domain.Holding `json:"properties"`
}

// SpotService settles spot buys and sells against a spot wallet.
type SpotService interface {
	Buy(ctx context.Context, req SpotOrderRequest) (*SpotSettlement, error)
	Sell(ctx context.Context, req SpotOrderRequest) (*SpotSettlement, error)
	History(ctx context.Context, userID, walletID uuid.UUID) ([]domain.SpotTransaction, error)
}

// SpotOrderRequest holds validated input for a spot buy or sell.
type SpotOrderRequest struct {
	UserID     uuid.UUID
	WalletID   uuid.UUID
	Symbol     string
	UnitNumber decimal.Decimal
	IndexPrice decimal.Decimal
}

// SpotSettlement is the post-settlement snapshot returned to the caller.
// Holding is nil when a sell fully liquidated the position.
type SpotSettlement struct {
	Wallet      domain.Wallet          `json:"wallet"`
	Holding     *domain.Holding        `json:"property"`
	Transaction domain.SpotTransaction `json:"transaction"`
}

// FuturesService opens and closes margin positions against a future wallet.
type FuturesService interface {
	Open(ctx context.Context, req FuturesOpenRequest) (*FuturesOpenResult, error)
	Close(ctx context.Context, req FuturesCloseRequest) (*FuturesCloseResult, error)
	OpenPositions(ctx context.Context, userID uuid.UUID) ([]domain.FutureOrder, error)
	History(ctx context.Context, userID, walletID uuid.UUID) ([]domain.FutureOrder, error)
}

// FuturesOpenRequest holds validated input for opening a position.
type FuturesOpenRequest struct {
	UserID     uuid.UUID
	WalletID   uuid.UUID
	Symbol     string
	Side       domain.FutureSide
	Margin     decimal.Decimal
	EntryPrice decimal.Decimal
	Leverage   int
}

// FuturesOpenResult returns the new order id and updated wallet.
type FuturesOpenResult struct {
	OrderID uuid.UUID     `json:"order_id"`
	Wallet  domain.Wallet `json:"wallet"`
}

// FuturesCloseRequest holds validated input for closing a position.
type FuturesCloseRequest struct {
	OrderID   uuid.UUID
	UserID    uuid.UUID
	ExitPrice decimal.Decimal
}

// FuturesCloseResult returns the realized PnL and updated wallet.
type FuturesCloseResult struct {
	OrderID uuid.UUID       `json:"order_id"`
	Wallet  domain.Wallet   `json:"wallet"`
	Profit  decimal.Decimal `json:"profit"`
}

// P2PService drives the escrow/release lifecycle of P2P orders.
type P2PService interface {
	CreateOrder(ctx context.Context, req P2PCreateRequest) (*domain.P2POrder, error)
	CancelOrder(ctx context.Context, orderID, userID uuid.UUID) error
	TransferPayment(ctx context.Context, req P2PTransferRequest) (*P2PTransferResult, error)
	ConfirmAndRelease(ctx context.Context, orderID, merchantID uuid.UUID) (*P2PReleaseResult, error)
	ListOpen(ctx context.Context) ([]domain.P2POrder, error)
	MyOrders(ctx context.Context, userID uuid.UUID) ([]domain.P2POrder, error)
	Merchants(ctx context.Context) ([]domain.User, error)
}

// P2PCreateRequest holds validated input for creating a P2P order.
type P2PCreateRequest struct {
	UserID      uuid.UUID
	MerchantID  uuid.UUID
	Type        domain.P2POrderType
	UnitNumbers decimal.Decimal
}

// P2PTransferRequest holds validated input for the buyer's payment leg.
type P2PTransferRequest struct {
	OrderID       uuid.UUID
	UserID        uuid.UUID
	SourceAccount string
	Amount        decimal.Decimal
}

// P2PTransferResult reports the created payment leg.
type P2PTransferResult struct {
	OrderID         uuid.UUID `json:"order_id"`
	TransactionID   uuid.UUID `json:"transaction_id"`
	MerchantAccount string    `json:"merchant_account"`
}

// P2PReleaseResult reports the post-release balances.
type P2PReleaseResult struct {
	OrderID         uuid.UUID       `json:"order_id"`
	UserBalance     decimal.Decimal `json:"user_balance"`
	MerchantBalance decimal.Decimal `json:"merchant_balance"`
}

// BankService manages a user's off-chain bank accounts.
type BankService interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.BankAccount, error)
	Create(ctx context.Context, req BankAccountCreateRequest) (*domain.BankAccount, error)
	Delete(ctx context.Context, userID uuid.UUID, accountNumber string) error
}

// BankAccountCreateRequest holds validated input for registering an account.
type BankAccountCreateRequest struct {
	UserID         uuid.UUID
	AccountNumber  string
	BankName       string
	AccountBalance decimal.Decimal
	IsDefault      bool
}

// AuthService defines registration and login.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// RegisterRequest holds input for user registration.
type RegisterRequest struct {
	Username string
	Password string
	Role     domain.UserRole
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID uuid.UUID, role domain.UserRole) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
	Role   domain.UserRole
}
