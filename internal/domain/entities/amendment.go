package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmendmentType tags the amendment (aditivo) variant.
type AmendmentType string

const (
	AmendmentTypePeriodo AmendmentType = "periodo"
	AmendmentTypeValor   AmendmentType = "valor"
)

// Amendment is immutable once stored. Its effect on the contract is applied in the
// same transaction that stores it.
//
//   - periodo: NewEndDate replaces the contract end date.
//   - valor: every item (ApplyToAllItems) or the items in PerItemPercentages have their
//     quantity increased by the percentage, compounding on the current quantity.
type Amendment struct {
	ID                 string                     `json:"id"`
	ContractID         string                     `json:"contract_id"`
	Type               AmendmentType              `json:"type"`
	NewEndDate         *time.Time                 `json:"new_end_date,omitempty"`
	Percentage         decimal.Decimal            `json:"percentage"`
	ApplyToAllItems    bool                       `json:"apply_to_all_items"`
	PerItemPercentages map[string]decimal.Decimal `json:"per_item_percentages,omitempty"`
	CreatedBy          string                     `json:"created_by"`
	CreatedAt          time.Time                  `json:"created_at"`
}

// PercentageFor returns the percentage applicable to itemID and whether the item is targeted.
func (a Amendment) PercentageFor(itemID string) (decimal.Decimal, bool) {
	if a.Type != AmendmentTypeValor {
		return decimal.Zero, false
	}
	if a.ApplyToAllItems {
		return a.Percentage, true
	}
	p, ok := a.PerItemPercentages[itemID]
	return p, ok
}
