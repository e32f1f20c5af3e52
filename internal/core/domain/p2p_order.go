package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// P2POrderType is the direction of a P2P order from the user's side.
type P2POrderType string

const (
	P2PBuy  P2POrderType = "buy"
	P2PSell P2POrderType = "sell"
)

// ValidP2POrderType reports whether t is buy or sell.
func ValidP2POrderType(t P2POrderType) bool {
	return t == P2PBuy || t == P2PSell
}

// P2PState is a state in the P2P order lifecycle.
// Transitions: open -> matched -> filled, or open -> cancelled.
type P2PState string

const (
	P2PStateOpen      P2PState = "open"
	P2PStateMatched   P2PState = "matched"
	P2PStateFilled    P2PState = "filled"
	P2PStateCancelled P2PState = "cancelled"
)

// P2POrder is a user <-> merchant USDT order gated on an off-chain bank
// transfer. TransactionID links the payment leg once transferred.
type P2POrder struct {
	ID            uuid.UUID       `json:"order_id"`
	UserID        uuid.UUID       `json:"user_id"`
	MerchantID    uuid.UUID       `json:"merchant_id"`
	Type          P2POrderType    `json:"type"`
	UnitNumbers   decimal.Decimal `json:"unit_numbers"`
	State         P2PState        `json:"state"`
	TransactionID *uuid.UUID      `json:"transaction_id,omitempty"`
	TS            time.Time       `json:"ts"`
}

// IsTerminal reports whether the order reached a final state.
func (o *P2POrder) IsTerminal() bool {
	return o.State == P2PStateFilled || o.State == P2PStateCancelled
}

// CanTransition reports whether the order may move to the target state.
func (o *P2POrder) CanTransition(to P2PState) bool {
	switch o.State {
	case P2PStateOpen:
		return to == P2PStateMatched || to == P2PStateCancelled
	case P2PStateMatched:
		return to == P2PStateFilled
	}
	return false
}
