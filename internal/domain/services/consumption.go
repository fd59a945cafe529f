package services

import (
	"sort"

	"gestao_contratos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Entry is a requested consumption of one item.
type Entry struct {
	ItemID   string
	Quantity decimal.Decimal
}

// RecordUpdate changes the quantity of an existing record.
type RecordUpdate struct {
	RecordID string
	ItemID   string
	Quantity decimal.Decimal
}

// ConsumptionDiff is what an order edit does to the ledger.
type ConsumptionDiff struct {
	Inserts []Entry
	Deletes []string
	Updates []RecordUpdate
}

func (d ConsumptionDiff) IsEmpty() bool {
	return len(d.Inserts) == 0 && len(d.Deletes) == 0 && len(d.Updates) == 0
}

// MergeEntries sums duplicated item ids, keeping first-seen order.
func MergeEntries(entries []Entry) []Entry {
	index := make(map[string]int, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if i, ok := index[e.ItemID]; ok {
			out[i].Quantity = out[i].Quantity.Add(e.Quantity)
			continue
		}
		index[e.ItemID] = len(out)
		out = append(out, e)
	}
	return out
}

// CheckConsumption validates new consumption against the balance: every quantity must be
// positive and its item must be in the contract with enough remaining balance.
// Duplicated item ids are merged first, so the check applies to the summed quantity.
func CheckConsumption(balance ContractBalance, entries []Entry) error {
	for _, e := range MergeEntries(entries) {
		if !e.Quantity.IsPositive() {
			return entities.ErrInvalidQuantity
		}
		ib, ok := balance.Item(e.ItemID)
		if !ok {
			return entities.ErrItemNotFound
		}
		if e.Quantity.GreaterThan(ib.RemainingQty) {
			return &entities.InsufficientBalanceError{
				ItemID:      ib.ItemID,
				Description: ib.Description,
				Requested:   e.Quantity,
				Available:   ib.RemainingQty,
			}
		}
	}
	return nil
}

// DiffConsumption compares the records of an order with the new entries. The ceiling of an
// entry is the item's remaining balance plus what this order already consumes of it, so
// keeping or lowering a quantity never fails.
func DiffConsumption(balance ContractBalance, existing []entities.ConsumptionRecord, entries []Entry) (ConsumptionDiff, error) {
	merged := MergeEntries(entries)

	oldByItem := make(map[string]decimal.Decimal, len(existing))
	recordsByItem := make(map[string][]entities.ConsumptionRecord, len(existing))
	for _, r := range existing {
		oldByItem[r.ItemID] = oldByItem[r.ItemID].Add(r.Quantity)
		recordsByItem[r.ItemID] = append(recordsByItem[r.ItemID], r)
	}

	var diff ConsumptionDiff
	wanted := make(map[string]struct{}, len(merged))
	for _, e := range merged {
		if !e.Quantity.IsPositive() {
			return ConsumptionDiff{}, entities.ErrInvalidQuantity
		}
		ib, ok := balance.Item(e.ItemID)
		if !ok {
			return ConsumptionDiff{}, entities.ErrItemNotFound
		}
		wanted[e.ItemID] = struct{}{}

		old := oldByItem[e.ItemID]
		ceiling := ib.RemainingQty.Add(old)
		if e.Quantity.GreaterThan(ceiling) {
			return ConsumptionDiff{}, &entities.InsufficientBalanceError{
				ItemID:      ib.ItemID,
				Description: ib.Description,
				Requested:   e.Quantity,
				Available:   ceiling,
			}
		}

		recs := recordsByItem[e.ItemID]
		switch {
		case len(recs) == 0:
			diff.Inserts = append(diff.Inserts, e)
		case e.Quantity.Equal(old) && len(recs) == 1:
		default:
			// collapse the item into its first record
			if !recs[0].Quantity.Equal(e.Quantity) {
				diff.Updates = append(diff.Updates, RecordUpdate{RecordID: recs[0].ID, ItemID: e.ItemID, Quantity: e.Quantity})
			}
			for _, extra := range recs[1:] {
				diff.Deletes = append(diff.Deletes, extra.ID)
			}
		}
	}

	for itemID, recs := range recordsByItem {
		if _, keep := wanted[itemID]; keep {
			continue
		}
		for _, r := range recs {
			diff.Deletes = append(diff.Deletes, r.ID)
		}
	}
	sort.Strings(diff.Deletes)
	return diff, nil
}
