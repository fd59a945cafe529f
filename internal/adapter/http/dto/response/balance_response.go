package response

import (
	"gestao_contratos/internal/domain/services"

	"github.com/shopspring/decimal"
)

type ItemBalanceResponse struct {
	ItemID          string          `json:"item_id"`
	Descricao       string          `json:"descricao"`
	OriginalQty     decimal.Decimal `json:"original_qty"`
	ConsumedQty     decimal.Decimal `json:"consumed_qty"`
	RemainingQty    decimal.Decimal `json:"remaining_qty"`
	PercentConsumed decimal.Decimal `json:"percent_consumed"`
	OriginalValue   decimal.Decimal `json:"original_value"`
	ConsumedValue   decimal.Decimal `json:"consumed_value"`
	RemainingValue  decimal.Decimal `json:"remaining_value"`
}

type BalanceResponse struct {
	ContractID      string                `json:"contract_id"`
	OriginalValue   decimal.Decimal       `json:"original_value"`
	ConsumedValue   decimal.Decimal       `json:"consumed_value"`
	RemainingValue  decimal.Decimal       `json:"remaining_value"`
	PercentConsumed decimal.Decimal       `json:"percent_consumed"`
	PerItem         []ItemBalanceResponse `json:"per_item"`
}

// Percentages are rounded to two places for display only.
func FromBalance(b services.ContractBalance) BalanceResponse {
	out := BalanceResponse{
		ContractID:      b.ContractID,
		OriginalValue:   b.OriginalValue,
		ConsumedValue:   b.ConsumedValue,
		RemainingValue:  b.RemainingValue,
		PercentConsumed: b.PercentConsumed.Round(2),
		PerItem:         make([]ItemBalanceResponse, 0, len(b.PerItem)),
	}
	for _, it := range b.PerItem {
		out.PerItem = append(out.PerItem, ItemBalanceResponse{
			ItemID:          it.ItemID,
			Descricao:       it.Description,
			OriginalQty:     it.OriginalQty,
			ConsumedQty:     it.ConsumedQty,
			RemainingQty:    it.RemainingQty,
			PercentConsumed: it.PercentConsumed.Round(2),
			OriginalValue:   it.OriginalValue,
			ConsumedValue:   it.ConsumedValue,
			RemainingValue:  it.RemainingValue,
		})
	}
	return out
}
