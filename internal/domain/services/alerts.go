package services

import (
	"sort"

	"gestao_contratos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DefaultAlertThreshold is the consumption percentage from which an item is flagged.
var DefaultAlertThreshold = decimal.NewFromInt(90)

// Alert is an item whose consumption reached the threshold.
type Alert struct {
	Contract entities.Contract
	Item     ItemBalance
}

// SelectAlerts flags every item with percent consumed >= threshold, highest first.
// Ties are ordered by contract number and then item description.
func SelectAlerts(contracts []entities.Contract, balances map[string]ContractBalance, threshold decimal.Decimal) []Alert {
	var out []Alert
	for _, c := range contracts {
		b, ok := balances[c.ID]
		if !ok {
			continue
		}
		for _, ib := range b.PerItem {
			if ib.PercentConsumed.GreaterThanOrEqual(threshold) {
				out = append(out, Alert{Contract: c, Item: ib})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Item.PercentConsumed.Equal(b.Item.PercentConsumed) {
			return a.Item.PercentConsumed.GreaterThan(b.Item.PercentConsumed)
		}
		if a.Contract.Number != b.Contract.Number {
			return a.Contract.Number < b.Contract.Number
		}
		if a.Item.Description != b.Item.Description {
			return a.Item.Description < b.Item.Description
		}
		return a.Item.ItemID < b.Item.ItemID
	})
	return out
}
