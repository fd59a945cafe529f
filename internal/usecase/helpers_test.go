package usecase

import (
	"context"
	"time"

	"gestao_contratos/internal/domain/entities"
	"gestao_contratos/internal/usecase/interfaces"
	mock_interfaces "gestao_contratos/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

func fixedOptions() Options {
	return Options{Now: func() time.Time { return fixedNow }}
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// runIn makes a mocked WithinContract run fn against tx.
func runIn(tx *mock_interfaces.MockILedgerTx) func(context.Context, string, func(interfaces.ILedgerTx) error) error {
	return func(_ context.Context, _ string, fn func(interfaces.ILedgerTx) error) error {
		return fn(tx)
	}
}

func activeContract() entities.Contract {
	return entities.Contract{
		ID:        "c-1",
		Number:    "012/2025",
		Suppliers: []string{"Papelaria Central"},
		Funds:     []string{"Educação", "Saúde"},
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		Version:   1,
	}
}

func contractItems() []entities.Item {
	return []entities.Item{
		{ID: "i-1", ContractID: "c-1", Description: "Papel A4", Unit: "resma", UnitPrice: dec("25"), Quantity: dec("100"), Position: 1},
		{ID: "i-2", ContractID: "c-1", Description: "Caneta azul", Unit: "caixa", UnitPrice: dec("10"), Quantity: dec("50"), Position: 2},
	}
}

// expectBalanceReads expects the three reads of a balance computation with i-1 at 95 consumed.
func expectBalanceReads(tx *mock_interfaces.MockILedgerTx) {
	tx.EXPECT().ListItems(gomock.Any(), "c-1").Return(contractItems(), nil)
	tx.EXPECT().ListOrdersForContract(gomock.Any(), "c-1").Return([]entities.Order{{ID: "o-1", ContractID: "c-1"}}, nil)
	tx.EXPECT().ListConsumptionRecordsByContract(gomock.Any(), "c-1").Return([]entities.ConsumptionRecord{
		{ID: "rec-1", OrderID: "o-1", ContractID: "c-1", ItemID: "i-1", Quantity: dec("95")},
	}, nil)
}

type decimalMatcher struct{ want decimal.Decimal }

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string { return "decimal equal to " + m.want.String() }

// decEq compares decimals by value; their internal representation may differ.
func decEq(v string) gomock.Matcher {
	return decimalMatcher{want: dec(v)}
}
