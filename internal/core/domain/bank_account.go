package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankAccount is an off-chain bank account owned by exactly one user.
// At most one account per user carries IsDefault; P2P payments target
// the merchant's default account.
type BankAccount struct {
	ID             uuid.UUID       `json:"account_id"`
	AccountNumber  string          `json:"account_number"`
	BankName       string          `json:"bank_name"`
	UserID         uuid.UUID       `json:"user_id"`
	AccountBalance decimal.Decimal `json:"account_balance"`
	IsDefault      bool            `json:"is_default"`
	CreatedAt      time.Time       `json:"created_at"`
}

// OwnedBy reports whether the account belongs to the given user.
func (a *BankAccount) OwnedBy(userID uuid.UUID) bool {
	return a.UserID == userID
}

// AccountTransaction is an immutable record of one off-chain bank
// transfer, used as the payment leg of a P2P order.
type AccountTransaction struct {
	ID                  uuid.UUID       `json:"transaction_id"`
	SourceAccountNumber string          `json:"source_account_number"`
	TargetAccountNumber string          `json:"target_account_number"`
	Amount              decimal.Decimal `json:"transaction_amount"`
	TransactionType     string          `json:"transaction_type"`
	Description         string          `json:"description"`
	TS                  time.Time       `json:"ts"`
}
