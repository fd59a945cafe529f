package usecase

import (
	"context"
	"log"
	"strings"

	"gestao_contratos/internal/domain/entities"
	"gestao_contratos/internal/domain/services"
	"gestao_contratos/internal/usecase/interfaces"
)

// OrderDetail is an order with its consumption records.
type OrderDetail struct {
	Order   entities.Order
	Records []entities.ConsumptionRecord
}

type IOrderUseCase interface {
	AdjustConsumption(ctx context.Context, orderID string, entries []services.Entry, editorID string) (OrderDetail, error)
	GetOrder(ctx context.Context, id string) (OrderDetail, error)
	GetByNumber(ctx context.Context, number string) (OrderDetail, error)
	ListOrdersForContract(ctx context.Context, contractID string) ([]entities.Order, error)
}

type OrderUseCase struct {
	ledger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(store interfaces.ILedgerStore, opts Options) *OrderUseCase {
	return &OrderUseCase{ledger: newLedger(store, opts)}
}

// AdjustConsumption replaces the items of an approved order by diffing its records:
// new items are inserted, missing items deleted and changed quantities updated.
func (u *OrderUseCase) AdjustConsumption(ctx context.Context, orderID string, entries []services.Entry, editorID string) (OrderDetail, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return OrderDetail{}, ErrInvalidOrderID
	}
	entries = trimEntries(entries)
	if len(entries) == 0 {
		return OrderDetail{}, ErrNoRequestedItems
	}

	o, err := u.store.GetOrder(ctx, orderID)
	if err != nil {
		return OrderDetail{}, err
	}
	if o.ID == "" {
		return OrderDetail{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] adjust start order_id=%s contract_id=%s editor_id=%s", o.ID, o.ContractID, editorID)

	var detail OrderDetail
	err = u.within(ctx, "order", o.ContractID, func(tx interfaces.ILedgerTx) error {
		current, err := tx.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return ErrOrderNotFound
		}
		c, err := u.contract(ctx, tx, current.ContractID)
		if err != nil {
			return err
		}
		if !u.acceptsOrders(c) {
			return ErrContractNotAcceptingOrder
		}
		_, balance, err := u.balance(ctx, tx, c)
		if err != nil {
			return err
		}
		existing, err := tx.ListConsumptionRecordsByOrder(ctx, orderID)
		if err != nil {
			return err
		}
		diff, err := services.DiffConsumption(balance, existing, entries)
		if err != nil {
			return err
		}
		if diff.IsEmpty() {
			detail = OrderDetail{Order: current, Records: existing}
			return nil
		}

		now := u.now()
		if len(diff.Deletes) > 0 {
			if err := tx.DeleteConsumptionRecords(ctx, orderID, diff.Deletes); err != nil {
				return err
			}
		}
		byID := make(map[string]entities.ConsumptionRecord, len(existing))
		for _, r := range existing {
			byID[r.ID] = r
		}
		for _, up := range diff.Updates {
			r := byID[up.RecordID]
			r.Quantity = up.Quantity
			r.UpdatedAt = now
			if err := tx.UpdateConsumptionRecord(ctx, r); err != nil {
				return err
			}
			byID[r.ID] = r
		}
		inserted := newRecords(current, diff.Inserts, now)
		if len(inserted) > 0 {
			if err := tx.InsertConsumptionRecords(ctx, inserted); err != nil {
				return err
			}
		}
		current.UpdatedAt = now
		if err := tx.TouchOrder(ctx, current); err != nil {
			return err
		}

		records := make([]entities.ConsumptionRecord, 0, len(existing)+len(inserted))
		deleted := make(map[string]struct{}, len(diff.Deletes))
		for _, id := range diff.Deletes {
			deleted[id] = struct{}{}
		}
		for _, r := range existing {
			if _, gone := deleted[r.ID]; !gone {
				records = append(records, byID[r.ID])
			}
		}
		detail = OrderDetail{Order: current, Records: append(records, inserted...)}
		return nil
	})
	if err != nil {
		log.Printf("[order][usecase] adjust failed order_id=%s err=%v", orderID, err)
		return OrderDetail{}, err
	}
	log.Printf("[order][usecase] adjust success order_id=%s records=%d", orderID, len(detail.Records))
	return detail, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (OrderDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return OrderDetail{}, ErrInvalidOrderID
	}
	o, err := u.store.GetOrder(ctx, id)
	if err != nil {
		return OrderDetail{}, err
	}
	return u.detail(ctx, o)
}

// GetByNumber looks an order up by its NNNN/YYYY number.
func (u *OrderUseCase) GetByNumber(ctx context.Context, number string) (OrderDetail, error) {
	n, err := entities.ParseOrderNumber(strings.TrimSpace(number))
	if err != nil {
		return OrderDetail{}, err
	}
	o, err := u.store.GetOrderByNumber(ctx, n)
	if err != nil {
		return OrderDetail{}, err
	}
	return u.detail(ctx, o)
}

func (u *OrderUseCase) detail(ctx context.Context, o entities.Order) (OrderDetail, error) {
	if o.ID == "" {
		return OrderDetail{}, ErrOrderNotFound
	}
	records, err := u.store.ListConsumptionRecordsByOrder(ctx, o.ID)
	if err != nil {
		return OrderDetail{}, err
	}
	return OrderDetail{Order: o, Records: records}, nil
}

func (u *OrderUseCase) ListOrdersForContract(ctx context.Context, contractID string) ([]entities.Order, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return nil, ErrInvalidContractID
	}
	if _, err := u.contract(ctx, u.store, contractID); err != nil {
		return nil, err
	}
	return u.store.ListOrdersForContract(ctx, contractID)
}
