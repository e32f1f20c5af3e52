package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpotTransactionType is the direction of a spot trade.
type SpotTransactionType string

const (
	SpotBuy  SpotTransactionType = "buy"
	SpotSell SpotTransactionType = "sell"
)

// SpotTransaction is an immutable, append-only record of one spot
// settlement. Profit is set only on sells.
type SpotTransaction struct {
	ID          uuid.UUID           `json:"transaction_id"`
	WalletID    uuid.UUID           `json:"wallet_id"`
	Symbol      string              `json:"symbol"`
	Type        SpotTransactionType `json:"type"`
	IndexPrice  decimal.Decimal     `json:"index_price"`
	UnitNumbers decimal.Decimal     `json:"unit_numbers"`
	Amount      decimal.Decimal     `json:"amount"`
	Profit      *decimal.Decimal    `json:"profit,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}
