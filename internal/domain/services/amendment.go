package services

import (
	"gestao_contratos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// QuantityChange is the effect of a value amendment on one item.
type QuantityChange struct {
	ItemID      string
	OldQuantity decimal.Decimal
	NewQuantity decimal.Decimal
}

// ValidateAmendment checks an amendment against the contract items it targets.
func ValidateAmendment(a entities.Amendment, items []entities.Item) error {
	switch a.Type {
	case entities.AmendmentTypePeriodo:
		if a.NewEndDate == nil || a.NewEndDate.IsZero() {
			return entities.ErrMissingEndDate
		}
		return nil
	case entities.AmendmentTypeValor:
	default:
		return entities.ErrInvalidAmendmentType
	}

	if a.ApplyToAllItems {
		if !a.Percentage.IsPositive() {
			return entities.ErrInvalidPercentage
		}
		return nil
	}
	if len(a.PerItemPercentages) == 0 {
		return entities.ErrNoAmendmentTarget
	}
	known := make(map[string]struct{}, len(items))
	for _, it := range items {
		known[it.ID] = struct{}{}
	}
	for itemID, p := range a.PerItemPercentages {
		if _, ok := known[itemID]; !ok {
			return entities.ErrUnknownAmendmentItem
		}
		if !p.IsPositive() {
			return entities.ErrInvalidPercentage
		}
	}
	return nil
}

// ApplyValueAmendment computes the new quantity of every targeted item.
// Quantities compound: the percentage applies to the current quantity, not the original.
// Rounding a fractional quantity can land below it; the whole amendment is then refused,
// since a lower quantity could fall under what was already consumed.
func ApplyValueAmendment(a entities.Amendment, items []entities.Item) ([]QuantityChange, error) {
	changes := make([]QuantityChange, 0, len(items))
	for _, it := range items {
		p, ok := a.PercentageFor(it.ID)
		if !ok {
			continue
		}
		next := IncreaseQuantity(it.Quantity, p)
		if next.LessThan(it.Quantity) {
			return nil, entities.ErrAmendmentShrinksItem
		}
		changes = append(changes, QuantityChange{
			ItemID:      it.ID,
			OldQuantity: it.Quantity,
			NewQuantity: next,
		})
	}
	return changes, nil
}

// IncreaseQuantity returns round(q * (1 + p/100)), rounding half away from zero.
func IncreaseQuantity(q, p decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(p.Div(hundred))
	return q.Mul(factor).Round(0)
}
