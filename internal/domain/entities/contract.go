package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractStatus is the lifecycle of a contract (contrato).
//
// Domain notes:
//   - Only ContractStatusPendenteAprovacao is ever persisted (StatusOverride).
//   - Every other status is derived from the current date against EndDate.
type ContractStatus string

const (
	ContractStatusAtivo             ContractStatus = "ativo"
	ContractStatusVencendo          ContractStatus = "vencendo"
	ContractStatusVencido           ContractStatus = "vencido"
	ContractStatusPendenteAprovacao ContractStatus = "pendente_aprovacao"
)

// DefaultExpiringWindow is how long before EndDate a contract is flagged as expiring.
const DefaultExpiringWindow = 30 * 24 * time.Hour

// Contract is a procurement agreement with its suppliers, funds and line items.
type Contract struct {
	ID             string          `json:"id"`
	Number         string          `json:"number"`
	Suppliers      []string        `json:"suppliers"`
	Funds          []string        `json:"funds"`
	Object         string          `json:"object"`
	TotalValue     decimal.Decimal `json:"total_value"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	StatusOverride ContractStatus  `json:"status_override,omitempty"`
	Version        int64           `json:"version"`
	Items          []Item          `json:"items,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	// Status is filled on read from StatusAt; it is not stored.
	Status ContractStatus `json:"status"`
}

// StatusAt derives the contract status on the calendar day of now.
// EndDate is inclusive: a contract ending today is still in force today.
func (c Contract) StatusAt(now time.Time, expiringWindow time.Duration) ContractStatus {
	if c.StatusOverride == ContractStatusPendenteAprovacao {
		return ContractStatusPendenteAprovacao
	}
	today := dateOnly(now, now.Location())
	end := dateOnly(c.EndDate, now.Location())
	if end.Before(today) {
		return ContractStatusVencido
	}
	if expiringWindow > 0 && !end.After(today.Add(expiringWindow)) {
		return ContractStatusVencendo
	}
	return ContractStatusAtivo
}

// AcceptsOrders reports whether new orders, order edits and item changes are allowed.
func (c Contract) AcceptsOrders(now time.Time, expiringWindow time.Duration) bool {
	switch c.StatusAt(now, expiringWindow) {
	case ContractStatusVencido, ContractStatusPendenteAprovacao:
		return false
	}
	return true
}

// HasFund reports whether the contract can be charged against fund.
func (c Contract) HasFund(fund string) bool {
	return containsString(c.Funds, fund)
}

// dateOnly is midnight of the calendar day of t as seen in loc.
func dateOnly(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
