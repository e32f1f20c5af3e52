package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Holding is an accumulated position in a non-quote asset inside a spot
// wallet, together with its volume-weighted average cost. Keyed by
// (wallet_id, symbol); deleted when units reach zero.
type Holding struct {
	WalletID        uuid.UUID       `json:"wallet_id"`
	Symbol          string          `json:"symbol"`
	UnitNumber      decimal.Decimal `json:"unit_number"`
	AverageBuyPrice decimal.Decimal `json:"average_buy_price"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ApplyBuy folds a buy of units at price into the position, recomputing
// the volume-weighted average: (old_units*old_avg + units*price) / total.
func (h *Holding) ApplyBuy(units, price decimal.Decimal) {
	oldValue := h.UnitNumber.Mul(h.AverageBuyPrice)
	newUnits := h.UnitNumber.Add(units)
	if newUnits.IsPositive() {
		h.AverageBuyPrice = oldValue.Add(units.Mul(price)).Div(newUnits)
	} else {
		h.AverageBuyPrice = price
	}
	h.UnitNumber = newUnits
}

// ApplySell decrements the position by units. The average cost basis is
// untouched; a holding that reaches zero units is deleted by the caller.
func (h *Holding) ApplySell(units decimal.Decimal) {
	h.UnitNumber = h.UnitNumber.Sub(units)
}

// Depleted reports whether the position has no units left.
func (h *Holding) Depleted() bool {
	return !h.UnitNumber.IsPositive()
}

// SellProfit returns (price - average_buy_price) * units for a sale at price.
func (h *Holding) SellProfit(units, price decimal.Decimal) decimal.Decimal {
	return price.Sub(h.AverageBuyPrice).Mul(units)
}
