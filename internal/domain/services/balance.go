package services

import (
	"sort"

	"gestao_contratos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ItemBalance is the balance of a single contracted line.
type ItemBalance struct {
	ItemID          string          `json:"item_id"`
	Description     string          `json:"description"`
	Unit            string          `json:"unit"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	OriginalQty     decimal.Decimal `json:"original_qty"`
	ConsumedQty     decimal.Decimal `json:"consumed_qty"`
	RemainingQty    decimal.Decimal `json:"remaining_qty"`
	PercentConsumed decimal.Decimal `json:"percent_consumed"`
	OriginalValue   decimal.Decimal `json:"original_value"`
	ConsumedValue   decimal.Decimal `json:"consumed_value"`
	RemainingValue  decimal.Decimal `json:"remaining_value"`
}

// ContractBalance aggregates the item balances of one contract.
type ContractBalance struct {
	ContractID      string          `json:"contract_id"`
	OriginalValue   decimal.Decimal `json:"original_value"`
	ConsumedValue   decimal.Decimal `json:"consumed_value"`
	RemainingValue  decimal.Decimal `json:"remaining_value"`
	PercentConsumed decimal.Decimal `json:"percent_consumed"`
	PerItem         []ItemBalance   `json:"per_item"`
}

// Item returns the balance line for itemID.
func (b ContractBalance) Item(itemID string) (ItemBalance, bool) {
	for _, it := range b.PerItem {
		if it.ItemID == itemID {
			return it, true
		}
	}
	return ItemBalance{}, false
}

// CalculateBalance derives consumption from the ledger. A record counts only when its
// order exists and belongs to contractID and its item is one of the contract items.
func CalculateBalance(contractID string, items []entities.Item, orders []entities.Order, records []entities.ConsumptionRecord) ContractBalance {
	validOrders := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		if o.ContractID == contractID {
			validOrders[o.ID] = struct{}{}
		}
	}

	consumed := make(map[string]decimal.Decimal, len(items))
	for _, r := range records {
		if _, ok := validOrders[r.OrderID]; !ok {
			continue
		}
		consumed[r.ItemID] = consumed[r.ItemID].Add(r.Quantity)
	}

	sorted := make([]entities.Item, 0, len(items))
	for _, it := range items {
		if it.ContractID == "" || it.ContractID == contractID {
			sorted = append(sorted, it)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Position != sorted[j].Position {
			return sorted[i].Position < sorted[j].Position
		}
		return sorted[i].ID < sorted[j].ID
	})

	out := ContractBalance{
		ContractID:      contractID,
		OriginalValue:   decimal.Zero,
		ConsumedValue:   decimal.Zero,
		RemainingValue:  decimal.Zero,
		PercentConsumed: decimal.Zero,
		PerItem:         make([]ItemBalance, 0, len(sorted)),
	}
	for _, it := range sorted {
		ib := itemBalance(it, consumed[it.ID])
		out.OriginalValue = out.OriginalValue.Add(ib.OriginalValue)
		out.ConsumedValue = out.ConsumedValue.Add(ib.ConsumedValue)
		out.PerItem = append(out.PerItem, ib)
	}
	out.RemainingValue = clampZero(out.OriginalValue.Sub(out.ConsumedValue))
	out.PercentConsumed = percent(out.ConsumedValue, out.OriginalValue)
	return out
}

func itemBalance(it entities.Item, consumed decimal.Decimal) ItemBalance {
	original := it.Quantity
	originalValue := original.Mul(it.UnitPrice)
	consumedValue := consumed.Mul(it.UnitPrice)
	return ItemBalance{
		ItemID:          it.ID,
		Description:     it.Description,
		Unit:            it.Unit,
		UnitPrice:       it.UnitPrice,
		OriginalQty:     original,
		ConsumedQty:     consumed,
		RemainingQty:    clampZero(original.Sub(consumed)),
		PercentConsumed: percent(consumed, original),
		OriginalValue:   originalValue,
		ConsumedValue:   consumedValue,
		RemainingValue:  clampZero(originalValue.Sub(consumedValue)),
	}
}

// percent is part/whole*100 capped at 100, or 0 when whole is not positive.
func percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	p := part.Div(whole).Mul(hundred)
	if p.GreaterThan(hundred) {
		return hundred
	}
	if p.IsNegative() {
		return decimal.Zero
	}
	return p
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
