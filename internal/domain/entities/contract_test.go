package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestContract_StatusAt(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, loc)
	window := DefaultExpiringWindow

	cases := []struct {
		name string
		c    Contract
		want ContractStatus
	}{
		{"active", Contract{EndDate: now.AddDate(0, 3, 0)}, ContractStatusAtivo},
		{"expiring inside window", Contract{EndDate: now.AddDate(0, 0, 10)}, ContractStatusVencendo},
		{"ends today still in force", Contract{EndDate: time.Date(2025, 6, 15, 0, 0, 0, 0, loc)}, ContractStatusVencendo},
		{"ended yesterday", Contract{EndDate: time.Date(2025, 6, 14, 0, 0, 0, 0, loc)}, ContractStatusVencido},
		{"pending override wins", Contract{EndDate: now.AddDate(0, 0, -10), StatusOverride: ContractStatusPendenteAprovacao}, ContractStatusPendenteAprovacao},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.StatusAt(now, window); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}

	t.Run("zero window never expiring", func(t *testing.T) {
		c := Contract{EndDate: now.AddDate(0, 0, 1)}
		if got := c.StatusAt(now, 0); got != ContractStatusAtivo {
			t.Fatalf("expected ativo, got %s", got)
		}
	})
}

func TestContract_AcceptsOrders(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if !(Contract{EndDate: now.AddDate(0, 0, 5)}).AcceptsOrders(now, DefaultExpiringWindow) {
		t.Fatalf("expiring contract should accept orders")
	}
	if (Contract{EndDate: now.AddDate(0, 0, -1)}).AcceptsOrders(now, DefaultExpiringWindow) {
		t.Fatalf("expired contract should not accept orders")
	}
	if (Contract{EndDate: now.AddDate(1, 0, 0), StatusOverride: ContractStatusPendenteAprovacao}).AcceptsOrders(now, DefaultExpiringWindow) {
		t.Fatalf("pending contract should not accept orders")
	}
}

func TestItem_AcceptsFund(t *testing.T) {
	if !(Item{}).AcceptsFund("saude") {
		t.Fatalf("item without funds should accept any fund")
	}
	it := Item{Funds: []string{"educacao"}}
	if it.AcceptsFund("saude") || !it.AcceptsFund("educacao") {
		t.Fatalf("unexpected fund check for %+v", it)
	}
}

func TestAmendment_PercentageFor(t *testing.T) {
	all := Amendment{Type: AmendmentTypeValor, ApplyToAllItems: true, Percentage: decimal.NewFromInt(10)}
	if p, ok := all.PercentageFor("x"); !ok || !p.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected 10 for every item, got %s %v", p, ok)
	}

	per := Amendment{Type: AmendmentTypeValor, PerItemPercentages: map[string]decimal.Decimal{"a": decimal.NewFromInt(5)}}
	if _, ok := per.PercentageFor("b"); ok {
		t.Fatalf("item b is not targeted")
	}

	period := Amendment{Type: AmendmentTypePeriodo, ApplyToAllItems: true, Percentage: decimal.NewFromInt(10)}
	if _, ok := period.PercentageFor("a"); ok {
		t.Fatalf("period amendment never targets items")
	}
}

func TestOrderRequestStatus_Transitions(t *testing.T) {
	targets := []OrderRequestStatus{OrderRequestStatusAprovada, OrderRequestStatusRecusada, OrderRequestStatusCancelada}
	for _, next := range targets {
		if !OrderRequestStatusPendente.CanTransitionTo(next) {
			t.Fatalf("pendente should reach %s", next)
		}
	}
	for _, terminal := range targets {
		if !terminal.IsTerminal() {
			t.Fatalf("%s should be terminal", terminal)
		}
		for _, next := range append(targets, OrderRequestStatusPendente) {
			if terminal.CanTransitionTo(next) {
				t.Fatalf("%s must not reach %s", terminal, next)
			}
		}
	}
	if OrderRequestStatusPendente.IsTerminal() {
		t.Fatalf("pendente is not terminal")
	}
}

func TestOrderRequest_Decide(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	r := OrderRequest{Status: OrderRequestStatusPendente}
	if !r.Decide(OrderRequestStatusRecusada, "u-2", "sem verba", at) {
		t.Fatalf("expected decision to apply")
	}
	if r.DecidedBy != "u-2" || r.DecisionReason != "sem verba" || r.DecidedAt == nil || !r.DecidedAt.Equal(at) {
		t.Fatalf("unexpected decision metadata: %+v", r)
	}
	if r.Decide(OrderRequestStatusAprovada, "u-3", "", at) {
		t.Fatalf("terminal request should not be decided again")
	}
	if r.Status != OrderRequestStatusRecusada || r.DecidedBy != "u-2" {
		t.Fatalf("request changed after rejected decision: %+v", r)
	}
}

func TestOrderNumber(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		if got := (OrderNumber{Sequence: 7, Year: 2025}).String(); got != "0007/2025" {
			t.Fatalf("expected 0007/2025, got %s", got)
		}
	})

	t.Run("parse", func(t *testing.T) {
		n, err := ParseOrderNumber("0123/2026")
		if err != nil || n.Sequence != 123 || n.Year != 2026 {
			t.Fatalf("unexpected parse result %+v err=%v", n, err)
		}
	})

	t.Run("parse rejects", func(t *testing.T) {
		for _, s := range []string{"", "1/2025", "00001/2025", "0001-2025", "0000/2025", "abcd/2025"} {
			if _, err := ParseOrderNumber(s); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error for %q, got %v", s, err)
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		b, err := OrderNumber{Sequence: 1, Year: 2025}.MarshalJSON()
		if err != nil || string(b) != `"0001/2025"` {
			t.Fatalf("unexpected json %s err=%v", b, err)
		}
		var n OrderNumber
		if err := n.UnmarshalJSON(b); err != nil || n.Sequence != 1 || n.Year != 2025 {
			t.Fatalf("unexpected unmarshal %+v err=%v", n, err)
		}
	})
}

func TestInsufficientBalanceError(t *testing.T) {
	var err error = &InsufficientBalanceError{
		ItemID:      "i-1",
		Description: "Papel A4",
		Requested:   decimal.NewFromInt(10),
		Available:   decimal.NewFromInt(5),
	}
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected kind match")
	}
	var ib *InsufficientBalanceError
	if !errors.As(err, &ib) || !ib.Shortfall().Equal(decimal.NewFromInt(5)) {
		t.Fatalf("expected shortfall 5, got %+v", ib)
	}
	if errors.Is(ErrItemNotFound, ErrValidation) || !errors.Is(ErrItemNotFound, ErrNotFound) {
		t.Fatalf("unexpected kind for ErrItemNotFound")
	}
}
