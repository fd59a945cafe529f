package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order (ordem de fornecimento) is created only by approving an OrderRequest.
type Order struct {
	ID         string      `json:"id"`
	ContractID string      `json:"contract_id"`
	RequestID  string      `json:"request_id"`
	Number     OrderNumber `json:"number"`
	Fund       string      `json:"fund"`
	CreatedBy  string      `json:"created_by"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// ConsumptionRecord is the fact "this order consumed this quantity of this item".
// Records are the source of truth for how much of an item was consumed.
type ConsumptionRecord struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	ContractID string          `json:"contract_id"`
	ItemID     string          `json:"item_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
