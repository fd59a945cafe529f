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

// Requester is who submits a request and the funds they may charge.
// It is passed explicitly on every call; there is no ambient "active fund".
type Requester struct {
	ID    string
	Funds []string
}

// SubmitInput is an order request as filled by the requester.
// TotalQuantity, when positive, must match the sum of the item quantities.
type SubmitInput struct {
	ContractID    string
	Requester     Requester
	Fund          string
	Justification string
	TotalQuantity decimal.Decimal
	Items         []services.Entry
}

// IOrderRequestUseCase drives the order request state machine
// (pendente -> aprovada | recusada | cancelada).
type IOrderRequestUseCase interface {
	Submit(ctx context.Context, in SubmitInput) (entities.OrderRequest, error)
	Approve(ctx context.Context, requestID, approverID string) (entities.OrderNumber, error)
	Refuse(ctx context.Context, requestID, refuserID, reason string) (entities.OrderRequest, error)
	Cancel(ctx context.Context, requestID, requesterID string) (entities.OrderRequest, error)
	GetByID(ctx context.Context, id string) (entities.OrderRequest, error)
	ListByContract(ctx context.Context, contractID string) ([]entities.OrderRequest, error)
}

type OrderRequestUseCase struct {
	ledger
}

var _ IOrderRequestUseCase = (*OrderRequestUseCase)(nil)

func NewOrderRequestUseCase(store interfaces.ILedgerStore, opts Options) *OrderRequestUseCase {
	return &OrderRequestUseCase{ledger: newLedger(store, opts)}
}

func (u *OrderRequestUseCase) Submit(ctx context.Context, in SubmitInput) (entities.OrderRequest, error) {
	contractID := strings.TrimSpace(in.ContractID)
	if contractID == "" {
		return entities.OrderRequest{}, ErrInvalidContractID
	}
	requesterID := strings.TrimSpace(in.Requester.ID)
	if requesterID == "" {
		return entities.OrderRequest{}, ErrRequesterRequired
	}
	justification := strings.TrimSpace(in.Justification)
	if justification == "" {
		return entities.OrderRequest{}, ErrJustificationRequired
	}
	entries := services.MergeEntries(trimEntries(in.Items))
	if len(entries) == 0 {
		return entities.OrderRequest{}, ErrNoRequestedItems
	}
	total := decimal.Zero
	for _, e := range entries {
		if !e.Quantity.IsPositive() {
			return entities.OrderRequest{}, entities.ErrInvalidQuantity
		}
		total = total.Add(e.Quantity)
	}
	if in.TotalQuantity.IsPositive() && !in.TotalQuantity.Equal(total) {
		return entities.OrderRequest{}, ErrTotalQuantityMismatch
	}
	fund, err := resolveFund(in.Fund, in.Requester.Funds)
	if err != nil {
		return entities.OrderRequest{}, err
	}

	log.Printf("[request][usecase] submit start contract_id=%s requester_id=%s fund=%s items=%d", contractID, requesterID, fund, len(entries))

	now := u.now()
	r := entities.OrderRequest{
		ID:            uuid.NewString(),
		ContractID:    contractID,
		RequesterID:   requesterID,
		Fund:          fund,
		Justification: justification,
		Status:        entities.OrderRequestStatusPendente,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, e := range entries {
		r.Items = append(r.Items, entities.RequestedItem{ItemID: e.ItemID, Quantity: e.Quantity})
	}

	err = u.within(ctx, "request", contractID, func(tx interfaces.ILedgerTx) error {
		c, err := u.contract(ctx, tx, contractID)
		if err != nil {
			return err
		}
		if !u.acceptsOrders(c) {
			return ErrContractNotAcceptingOrder
		}
		if !c.HasFund(fund) {
			return ErrFundNotAllowed
		}
		items, balance, err := u.balance(ctx, tx, c)
		if err != nil {
			return err
		}
		if err := checkItemFunds(items, entries, fund); err != nil {
			return err
		}
		// fail fast; approval checks again against the balance of that moment
		if err := services.CheckConsumption(balance, entries); err != nil {
			return err
		}
		return tx.InsertOrderRequest(ctx, r)
	})
	if err != nil {
		log.Printf("[request][usecase] submit failed contract_id=%s err=%v", contractID, err)
		return entities.OrderRequest{}, err
	}
	log.Printf("[request][usecase] submit success request_id=%s", r.ID)
	return r, nil
}

// resolveFund picks the fund of a request. An explicit fund must be one of the requester's
// funds when they have any. Without one, a single-fund requester defaults to it.
func resolveFund(explicit string, requesterFunds []string) (string, error) {
	funds := cleanList(requesterFunds)
	explicit = strings.TrimSpace(explicit)
	if explicit != "" {
		if len(funds) > 0 && !containsFund(funds, explicit) {
			return "", ErrFundNotAllowed
		}
		return explicit, nil
	}
	switch len(funds) {
	case 0:
		return "", ErrFundRequired
	case 1:
		return funds[0], nil
	default:
		return "", ErrFundAmbiguous
	}
}

func checkItemFunds(items []entities.Item, entries []services.Entry, fund string) error {
	byID := make(map[string]entities.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	for _, e := range entries {
		it, ok := byID[e.ItemID]
		if !ok {
			return ErrItemNotFound
		}
		if !it.AcceptsFund(fund) {
			return ErrFundNotAllowed
		}
	}
	return nil
}

// Approve creates the order and commits its consumption. Every item must fit the balance
// of the moment of approval, or nothing is written.
func (u *OrderRequestUseCase) Approve(ctx context.Context, requestID, approverID string) (entities.OrderNumber, error) {
	requestID = strings.TrimSpace(requestID)
	approverID = strings.TrimSpace(approverID)
	if requestID == "" {
		return entities.OrderNumber{}, ErrInvalidRequestID
	}
	if approverID == "" {
		return entities.OrderNumber{}, ErrDeciderRequired
	}
	contractID, err := u.requestContract(ctx, requestID)
	if err != nil {
		return entities.OrderNumber{}, err
	}

	log.Printf("[request][usecase] approve start request_id=%s contract_id=%s approver_id=%s", requestID, contractID, approverID)

	var number entities.OrderNumber
	err = u.within(ctx, "request", contractID, func(tx interfaces.ILedgerTx) error {
		r, err := pendingRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}
		c, err := u.contract(ctx, tx, contractID)
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
		entries := make([]services.Entry, 0, len(r.Items))
		for _, it := range r.Items {
			entries = append(entries, services.Entry{ItemID: it.ItemID, Quantity: it.Quantity})
		}
		if err := services.CheckConsumption(balance, entries); err != nil {
			return err
		}

		now := u.now()
		seq, err := tx.NextOrderSequence(ctx, now.Year())
		if err != nil {
			return err
		}
		if seq > entities.MaxOrderSequence {
			return ErrOrderSequenceExhausted
		}
		order := entities.Order{
			ID:         uuid.NewString(),
			ContractID: contractID,
			RequestID:  r.ID,
			Number:     entities.OrderNumber{Sequence: seq, Year: now.Year()},
			Fund:       r.Fund,
			CreatedBy:  approverID,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := tx.InsertOrder(ctx, order); err != nil {
			return err
		}
		if err := tx.InsertConsumptionRecords(ctx, newRecords(order, services.MergeEntries(entries), now)); err != nil {
			return err
		}

		r.Decide(entities.OrderRequestStatusAprovada, approverID, "", now)
		r.OrderID = order.ID
		r.OrderNumber = order.Number.String()
		if err := tx.UpdateOrderRequestStatus(ctx, r); err != nil {
			return err
		}
		number = order.Number
		return nil
	})
	if err != nil {
		log.Printf("[request][usecase] approve failed request_id=%s err=%v", requestID, err)
		return entities.OrderNumber{}, err
	}
	log.Printf("[request][usecase] approve success request_id=%s order_number=%s", requestID, number)
	return number, nil
}

func (u *OrderRequestUseCase) Refuse(ctx context.Context, requestID, refuserID, reason string) (entities.OrderRequest, error) {
	refuserID = strings.TrimSpace(refuserID)
	reason = strings.TrimSpace(reason)
	if refuserID == "" {
		return entities.OrderRequest{}, ErrDeciderRequired
	}
	if reason == "" {
		return entities.OrderRequest{}, ErrReasonRequired
	}
	return u.decide(ctx, requestID, entities.OrderRequestStatusRecusada, refuserID, reason, nil)
}

// Cancel is only available to the requester of a pending request.
func (u *OrderRequestUseCase) Cancel(ctx context.Context, requestID, requesterID string) (entities.OrderRequest, error) {
	requesterID = strings.TrimSpace(requesterID)
	if requesterID == "" {
		return entities.OrderRequest{}, ErrRequesterRequired
	}
	return u.decide(ctx, requestID, entities.OrderRequestStatusCancelada, requesterID, "", func(r entities.OrderRequest) error {
		if r.RequesterID != requesterID {
			return ErrNotRequester
		}
		return nil
	})
}

func (u *OrderRequestUseCase) decide(
	ctx context.Context,
	requestID string,
	next entities.OrderRequestStatus,
	by, reason string,
	guard func(entities.OrderRequest) error,
) (entities.OrderRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.OrderRequest{}, ErrInvalidRequestID
	}
	contractID, err := u.requestContract(ctx, requestID)
	if err != nil {
		return entities.OrderRequest{}, err
	}

	var decided entities.OrderRequest
	err = u.within(ctx, "request", contractID, func(tx interfaces.ILedgerTx) error {
		r, err := pendingRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if guard != nil {
			if err := guard(r); err != nil {
				return err
			}
		}
		r.Decide(next, by, reason, u.now())
		if err := tx.UpdateOrderRequestStatus(ctx, r); err != nil {
			return err
		}
		decided = r
		return nil
	})
	if err != nil {
		log.Printf("[request][usecase] %s failed request_id=%s err=%v", next, requestID, err)
		return entities.OrderRequest{}, err
	}
	log.Printf("[request][usecase] %s request_id=%s by=%s", next, requestID, by)
	return decided, nil
}

// requestContract finds the contract that scopes the request's transaction.
func (u *OrderRequestUseCase) requestContract(ctx context.Context, requestID string) (string, error) {
	r, err := u.store.GetOrderRequest(ctx, requestID)
	if err != nil {
		return "", err
	}
	if r.ID == "" {
		return "", ErrOrderRequestNotFound
	}
	return r.ContractID, nil
}

func pendingRequest(ctx context.Context, tx interfaces.ILedgerReader, requestID string) (entities.OrderRequest, error) {
	r, err := tx.GetOrderRequest(ctx, requestID)
	if err != nil {
		return entities.OrderRequest{}, err
	}
	if r.ID == "" {
		return entities.OrderRequest{}, ErrOrderRequestNotFound
	}
	if r.Status != entities.OrderRequestStatusPendente {
		return entities.OrderRequest{}, ErrRequestNotPending
	}
	return r, nil
}

func (u *OrderRequestUseCase) GetByID(ctx context.Context, id string) (entities.OrderRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrderRequest{}, ErrInvalidRequestID
	}
	r, err := u.store.GetOrderRequest(ctx, id)
	if err != nil {
		return entities.OrderRequest{}, err
	}
	if r.ID == "" {
		return entities.OrderRequest{}, ErrOrderRequestNotFound
	}
	return r, nil
}

func (u *OrderRequestUseCase) ListByContract(ctx context.Context, contractID string) ([]entities.OrderRequest, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return nil, ErrInvalidContractID
	}
	if _, err := u.contract(ctx, u.store, contractID); err != nil {
		return nil, err
	}
	return u.store.ListOrderRequests(ctx, contractID)
}

func newRecords(o entities.Order, entries []services.Entry, now time.Time) []entities.ConsumptionRecord {
	records := make([]entities.ConsumptionRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, entities.ConsumptionRecord{
			ID:         uuid.NewString(),
			OrderID:    o.ID,
			ContractID: o.ContractID,
			ItemID:     e.ItemID,
			Quantity:   e.Quantity,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	return records
}

func trimEntries(entries []services.Entry) []services.Entry {
	out := make([]services.Entry, 0, len(entries))
	for _, e := range entries {
		e.ItemID = strings.TrimSpace(e.ItemID)
		out = append(out, e)
	}
	return out
}

func containsFund(funds []string, fund string) bool {
	for _, f := range funds {
		if f == fund {
			return true
		}
	}
	return false
}
