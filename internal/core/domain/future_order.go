package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FutureSide is the direction of a futures position.
type FutureSide string

const (
	FutureLong  FutureSide = "long"
	FutureShort FutureSide = "short"
)

// ValidFutureSide reports whether s is long or short.
func ValidFutureSide(s FutureSide) bool {
	return s == FutureLong || s == FutureShort
}

// Leverage bounds for futures positions.
const (
	MinLeverage = 1
	MaxLeverage = 5
)

// FutureOrder is a margin position. Created open (CloseTS nil); a single
// close transition sets CloseTS, ExitPrice and Profit. PositionSize is
// fixed at open as margin * leverage / entry_price.
type FutureOrder struct {
	ID           uuid.UUID        `json:"future_order_id"`
	WalletID     uuid.UUID        `json:"wallet_id"`
	Symbol       string           `json:"symbol"`
	Side         FutureSide       `json:"side"`
	EntryPrice   decimal.Decimal  `json:"entry_price"`
	PositionSize decimal.Decimal  `json:"position_size"`
	Margin       decimal.Decimal  `json:"margin"`
	Leverage     int              `json:"leverage"`
	OpenTS       time.Time        `json:"open_ts"`
	CloseTS      *time.Time       `json:"close_ts,omitempty"`
	ExitPrice    *decimal.Decimal `json:"exit_price,omitempty"`
	Profit       *decimal.Decimal `json:"profit,omitempty"`
}

// IsOpen reports whether the position has not been closed yet.
func (o *FutureOrder) IsOpen() bool {
	return o.CloseTS == nil
}

// PnL computes the realized profit and loss for closing at exitPrice.
// Long: (exit - entry) * size. Short: (entry - exit) * size.
func (o *FutureOrder) PnL(exitPrice decimal.Decimal) decimal.Decimal {
	if o.Side == FutureLong {
		return exitPrice.Sub(o.EntryPrice).Mul(o.PositionSize)
	}
	return o.EntryPrice.Sub(exitPrice).Mul(o.PositionSize)
}
