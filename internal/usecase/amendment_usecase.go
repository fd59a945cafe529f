package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"gestao_contratos/internal/domain/entities"
	"gestao_contratos/internal/domain/services"
	"gestao_contratos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AmendmentInput mirrors the amendment form.
//
// A non-empty PerItemPercentages selects per-item mode; otherwise Percentage applies to
// every item of the contract.
type AmendmentInput struct {
	ContractID         string
	Type               string
	NewEndDate         string
	Percentage         decimal.Decimal
	PerItemPercentages map[string]decimal.Decimal
	CreatedBy          string
}

type IAmendmentUseCase interface {
	ApplyAmendment(ctx context.Context, in AmendmentInput) (entities.Amendment, error)
	ListAmendments(ctx context.Context, contractID string) ([]entities.Amendment, error)
}

type AmendmentUseCase struct {
	ledger
}

var _ IAmendmentUseCase = (*AmendmentUseCase)(nil)

func NewAmendmentUseCase(store interfaces.ILedgerStore, opts Options) *AmendmentUseCase {
	return &AmendmentUseCase{ledger: newLedger(store, opts)}
}

// ApplyAmendment stores the amendment and applies its effect in one transaction.
func (u *AmendmentUseCase) ApplyAmendment(ctx context.Context, in AmendmentInput) (entities.Amendment, error) {
	a, err := u.buildAmendment(in)
	if err != nil {
		return entities.Amendment{}, err
	}
	log.Printf("[amendment][usecase] apply start contract_id=%s type=%s", a.ContractID, a.Type)

	err = u.within(ctx, "amendment", a.ContractID, func(tx interfaces.ILedgerTx) error {
		c, err := u.contract(ctx, tx, a.ContractID)
		if err != nil {
			return err
		}
		// a period amendment is how an expired contract is revived
		if a.Type == entities.AmendmentTypeValor && !u.acceptsOrders(c) {
			return ErrContractNotEditable
		}
		items, err := tx.ListItems(ctx, a.ContractID)
		if err != nil {
			return err
		}
		if err := services.ValidateAmendment(a, items); err != nil {
			return err
		}
		var changes []services.QuantityChange
		if a.Type == entities.AmendmentTypeValor {
			if changes, err = services.ApplyValueAmendment(a, items); err != nil {
				return err
			}
		}
		if err := tx.InsertAmendment(ctx, a); err != nil {
			return err
		}

		switch a.Type {
		case entities.AmendmentTypePeriodo:
			return tx.UpdateContractEndDate(ctx, a.ContractID, *a.NewEndDate)
		case entities.AmendmentTypeValor:
			for _, ch := range changes {
				if err := tx.UpdateItemQuantity(ctx, a.ContractID, ch.ItemID, ch.NewQuantity); err != nil {
					return err
				}
				log.Printf("[amendment][usecase] item quantity contract_id=%s item_id=%s old=%s new=%s",
					a.ContractID, ch.ItemID, ch.OldQuantity, ch.NewQuantity)
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[amendment][usecase] apply failed contract_id=%s err=%v", a.ContractID, err)
		return entities.Amendment{}, err
	}
	log.Printf("[amendment][usecase] apply success contract_id=%s amendment_id=%s", a.ContractID, a.ID)
	return a, nil
}

func (u *AmendmentUseCase) buildAmendment(in AmendmentInput) (entities.Amendment, error) {
	contractID := strings.TrimSpace(in.ContractID)
	if contractID == "" {
		return entities.Amendment{}, ErrInvalidContractID
	}

	now := u.now()
	a := entities.Amendment{
		ID:         uuid.NewString(),
		ContractID: contractID,
		Type:       entities.AmendmentType(strings.ToLower(strings.TrimSpace(in.Type))),
		CreatedBy:  strings.TrimSpace(in.CreatedBy),
		CreatedAt:  now,
	}

	switch a.Type {
	case entities.AmendmentTypePeriodo:
		end, err := ParseDate(in.NewEndDate, now.Location())
		if err != nil {
			return entities.Amendment{}, err
		}
		a.NewEndDate = &end
	case entities.AmendmentTypeValor:
		if len(in.PerItemPercentages) > 0 {
			a.PerItemPercentages = make(map[string]decimal.Decimal, len(in.PerItemPercentages))
			for itemID, p := range in.PerItemPercentages {
				a.PerItemPercentages[strings.TrimSpace(itemID)] = p
			}
		} else {
			a.ApplyToAllItems = true
			a.Percentage = in.Percentage
		}
	default:
		return entities.Amendment{}, entities.ErrInvalidAmendmentType
	}
	return a, nil
}

func (u *AmendmentUseCase) ListAmendments(ctx context.Context, contractID string) ([]entities.Amendment, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return nil, ErrInvalidContractID
	}
	if _, err := u.contract(ctx, u.store, contractID); err != nil {
		return nil, err
	}
	return u.store.ListAmendments(ctx, contractID)
}

var dateLayouts = []string{"2006-01-02", "02/01/2006"}

// ParseDate accepts YYYY-MM-DD, DD/MM/YYYY or RFC3339 and returns the calendar day in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.In(loc)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
	}
	return time.Time{}, ErrInvalidDate
}
