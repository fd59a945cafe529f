package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequestStatus represents the lifecycle of an order request (solicitação).
//
// pendente is the only state with exits; aprovada, recusada and cancelada are terminal.
type OrderRequestStatus string

const (
	OrderRequestStatusPendente  OrderRequestStatus = "pendente"
	OrderRequestStatusAprovada  OrderRequestStatus = "aprovada"
	OrderRequestStatusRecusada  OrderRequestStatus = "recusada"
	OrderRequestStatusCancelada OrderRequestStatus = "cancelada"
)

var orderRequestTransitions = map[OrderRequestStatus][]OrderRequestStatus{
	OrderRequestStatusPendente: {
		OrderRequestStatusAprovada,
		OrderRequestStatusRecusada,
		OrderRequestStatusCancelada,
	},
}

// CanTransitionTo reports whether next is reachable from s.
func (s OrderRequestStatus) CanTransitionTo(next OrderRequestStatus) bool {
	for _, allowed := range orderRequestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s OrderRequestStatus) IsTerminal() bool {
	return len(orderRequestTransitions[s]) == 0
}

// RequestedItem is one line of an order request.
type RequestedItem struct {
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// OrderRequest asks to consume part of a contract. Consumption is only committed when
// the request is approved, which also assigns OrderID and OrderNumber.
type OrderRequest struct {
	ID             string             `json:"id"`
	ContractID     string             `json:"contract_id"`
	RequesterID    string             `json:"requester_id"`
	Fund           string             `json:"fund"`
	Justification  string             `json:"justification"`
	Items          []RequestedItem    `json:"items"`
	Status         OrderRequestStatus `json:"status"`
	DecidedBy      string             `json:"decided_by,omitempty"`
	DecidedAt      *time.Time         `json:"decided_at,omitempty"`
	DecisionReason string             `json:"decision_reason,omitempty"`
	OrderID        string             `json:"order_id,omitempty"`
	OrderNumber    string             `json:"order_number,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// TotalQuantity sums the requested quantities.
func (r OrderRequest) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, it := range r.Items {
		total = total.Add(it.Quantity)
	}
	return total
}

// Decide stamps the decision metadata and moves the request to next.
// It returns false, leaving r untouched, when the transition is not allowed.
func (r *OrderRequest) Decide(next OrderRequestStatus, by, reason string, at time.Time) bool {
	if !r.Status.CanTransitionTo(next) {
		return false
	}
	r.Status = next
	r.DecidedBy = by
	r.DecisionReason = reason
	r.DecidedAt = &at
	r.UpdatedAt = at
	return true
}
