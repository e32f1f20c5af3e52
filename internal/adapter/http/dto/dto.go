package dto

import "github.com/shopspring/decimal"

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Role     string `json:"role" binding:"omitempty,oneof=user merchant"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// CreateWalletRequest is the request body for opening a wallet.
type CreateWalletRequest struct {
	Type string `json:"type" binding:"required,oneof=fund spot future"`
}

// SpotOrderRequest is the request body for a spot buy or sell.
// UnitNumber and IndexPrice accept JSON numbers or numeric strings.
type SpotOrderRequest struct {
	WalletID   string          `json:"wallet_id" binding:"required,uuid"`
	Symbol     string          `json:"symbol" binding:"required,max=20,safe_id"`
	UnitNumber decimal.Decimal `json:"unit_number"`
	IndexPrice decimal.Decimal `json:"index_price"`
}

// FuturesOpenRequest is the request body for opening a margin position.
type FuturesOpenRequest struct {
	WalletID   string          `json:"wallet_id" binding:"required,uuid"`
	Symbol     string          `json:"symbol" binding:"required,max=20,safe_id"`
	Side       string          `json:"side" binding:"required,oneof=long short"`
	Margin     decimal.Decimal `json:"margin"`
	EntryPrice decimal.Decimal `json:"entry_price"`
	Leverage   int             `json:"leverage" binding:"required"`
}

// FuturesCloseRequest is the request body for closing a position.
// The order ID comes from the URL path.
type FuturesCloseRequest struct {
	ExitPrice decimal.Decimal `json:"exit_price"`
}

// P2PCreateRequest is the request body for opening a P2P order.
type P2PCreateRequest struct {
	MerchantID  string          `json:"merchant_id" binding:"required,uuid"`
	Type        string          `json:"type" binding:"required,oneof=buy sell"`
	UnitNumbers decimal.Decimal `json:"unit_numbers"`
}

// P2PTransferRequest is the request body for the buyer's payment leg.
type P2PTransferRequest struct {
	SourceAccount string          `json:"source_account" binding:"required,max=34,safe_id"`
	Amount        decimal.Decimal `json:"amount"`
}

// BankAccountCreateRequest is the request body for registering a bank account.
type BankAccountCreateRequest struct {
	AccountNumber  string          `json:"account_number" binding:"required,min=6,max=34,safe_id"`
	BankName       string          `json:"bank_name" binding:"required,min=1,max=100"`
	AccountBalance decimal.Decimal `json:"account_balance"`
	IsDefault      bool            `json:"is_default"`
}
