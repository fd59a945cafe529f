package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a contracted line. Consumption is not stored on the item; it is the sum of
// the ConsumptionRecords of the contract's orders.
type Item struct {
	ID          string          `json:"id"`
	ContractID  string          `json:"contract_id"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    decimal.Decimal `json:"quantity"`
	Funds       []string        `json:"funds,omitempty"`
	Position    int             `json:"position"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Value is the contracted value of the line.
func (i Item) Value() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// AcceptsFund reports whether the item may be charged against fund.
// An item without funds follows the contract funds.
func (i Item) AcceptsFund(fund string) bool {
	if len(i.Funds) == 0 {
		return true
	}
	return containsString(i.Funds, fund)
}
