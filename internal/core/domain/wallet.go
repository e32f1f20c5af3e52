package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletType distinguishes the three wallet kinds a user may hold.
type WalletType string

const (
	WalletTypeFund   WalletType = "fund"
	WalletTypeSpot   WalletType = "spot"
	WalletTypeFuture WalletType = "future"
)

// ValidWalletType reports whether t is one of the known wallet types.
func ValidWalletType(t WalletType) bool {
	switch t {
	case WalletTypeFund, WalletTypeSpot, WalletTypeFuture:
		return true
	}
	return false
}

// Wallet holds a user's quote-currency balance for one wallet type.
// One wallet per (user, type). Balance is mutated only by settlement
// operations inside a database transaction.
type Wallet struct {
	ID        uuid.UUID       `json:"wallet_id"`
	UserID    uuid.UUID       `json:"user_id"`
	Type      WalletType      `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// OwnedBy reports whether the wallet belongs to the given user.
func (w *Wallet) OwnedBy(userID uuid.UUID) bool {
	return w.UserID == userID
}

// CanAfford reports whether the balance covers the given amount.
func (w *Wallet) CanAfford(amount decimal.Decimal) bool {
	return w.Balance.GreaterThanOrEqual(amount)
}
