package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestao_contratos/internal/domain/entities"
	"gestao_contratos/internal/domain/services"
	mock_interfaces "gestao_contratos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validContractInput() CreateContractInput {
	return CreateContractInput{
		Number:    "015/2025",
		Suppliers: []string{" Papelaria Central ", "Papelaria Central"},
		Funds:     []string{"Educação"},
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		Items: []ItemInput{
			{Description: "Papel A4", Unit: "resma", UnitPrice: dec("25"), Quantity: dec("100")},
			{Description: "Caneta", Unit: "caixa", UnitPrice: dec("10.5"), Quantity: dec("10")},
		},
	}
}

func TestContractUseCase_CreateContract(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(in *CreateContractInput)
		want   error
	}{
		{"missing number", func(in *CreateContractInput) { in.Number = "" }, ErrContractNumberRequired},
		{"missing supplier", func(in *CreateContractInput) { in.Suppliers = []string{" "} }, ErrSupplierRequired},
		{"missing fund", func(in *CreateContractInput) { in.Funds = nil }, ErrContractFundRequired},
		{"missing dates", func(in *CreateContractInput) { in.EndDate = time.Time{} }, ErrInvalidDate},
		{"inverted period", func(in *CreateContractInput) { in.StartDate = in.EndDate.AddDate(0, 0, 1) }, ErrInvalidPeriod},
		{"item without description", func(in *CreateContractInput) { in.Items[0].Description = "" }, ErrItemDescriptionMissing},
		{"negative price", func(in *CreateContractInput) { in.Items[0].UnitPrice = dec("-1") }, ErrInvalidUnitPrice},
		{"zero quantity", func(in *CreateContractInput) { in.Items[1].Quantity = dec("0") }, entities.ErrInvalidQuantity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewContractUseCase(nil, fixedOptions())
			in := validContractInput()
			tc.mutate(&in)

			_, err := uc.CreateContract(context.Background(), in)
			if !errors.Is(err, tc.want) || !errors.Is(err, entities.ErrValidation) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewContractUseCase(store, fixedOptions())

		store.EXPECT().CreateContract(gomock.Any(), gomock.AssignableToTypeOf(entities.Contract{})).DoAndReturn(
			func(_ context.Context, c entities.Contract) (entities.Contract, error) { return c, nil })

		c, err := uc.CreateContract(context.Background(), validContractInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.Suppliers) != 1 || c.Suppliers[0] != "Papelaria Central" {
			t.Fatalf("expected trimmed unique suppliers, got %v", c.Suppliers)
		}
		if !c.TotalValue.Equal(dec("2605")) {
			t.Fatalf("expected total 2605, got %s", c.TotalValue)
		}
		if c.Items[1].Position != 2 || c.Items[1].ContractID != c.ID {
			t.Fatalf("unexpected item %+v", c.Items[1])
		}
		if c.Status != entities.ContractStatusAtivo {
			t.Fatalf("expected ativo, got %s", c.Status)
		}
	})
}

func TestContractUseCase_DeleteItem(t *testing.T) {
	t.Run("consumed item is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		tx := mock_interfaces.NewMockILedgerTx(ctrl)
		uc := NewContractUseCase(store, fixedOptions())

		store.EXPECT().WithinContract(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(runIn(tx))
		tx.EXPECT().GetContract(gomock.Any(), "c-1").Return(activeContract(), nil)
		tx.EXPECT().GetItem(gomock.Any(), "c-1", "i-1").Return(contractItems()[0], nil)
		tx.EXPECT().ListConsumptionRecordsByItem(gomock.Any(), "i-1").Return([]entities.ConsumptionRecord{
			{ID: "rec-1", ItemID: "i-1", Quantity: dec("1")},
		}, nil)

		if err := uc.DeleteItem(context.Background(), "c-1", "i-1"); !errors.Is(err, ErrItemHasConsumption) {
			t.Fatalf("expected ErrItemHasConsumption, got %v", err)
		}
	})

	t.Run("unused item is deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		tx := mock_interfaces.NewMockILedgerTx(ctrl)
		var changed []string
		opts := fixedOptions()
		opts.OnLedgerChange = func(id string) { changed = append(changed, id) }
		uc := NewContractUseCase(store, opts)

		store.EXPECT().WithinContract(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(runIn(tx))
		tx.EXPECT().GetContract(gomock.Any(), "c-1").Return(activeContract(), nil)
		tx.EXPECT().GetItem(gomock.Any(), "c-1", "i-2").Return(contractItems()[1], nil)
		tx.EXPECT().ListConsumptionRecordsByItem(gomock.Any(), "i-2").Return(nil, nil)
		tx.EXPECT().DeleteItem(gomock.Any(), "c-1", "i-2").Return(nil)

		if err := uc.DeleteItem(context.Background(), "c-1", "i-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(changed) != 1 || changed[0] != "c-1" {
			t.Fatalf("expected one change notification, got %v", changed)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		tx := mock_interfaces.NewMockILedgerTx(ctrl)
		uc := NewContractUseCase(store, fixedOptions())

		store.EXPECT().WithinContract(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(runIn(tx))
		tx.EXPECT().GetContract(gomock.Any(), "c-1").Return(activeContract(), nil)
		tx.EXPECT().GetItem(gomock.Any(), "c-1", "i-9").Return(entities.Item{}, nil)

		if err := uc.DeleteItem(context.Background(), "c-1", "i-9"); !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestContractUseCase_RefreshStatuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockILedgerStore(ctrl)
	uc := NewContractUseCase(store, fixedOptions())

	expired := activeContract()
	expired.ID = "c-2"
	expired.EndDate = fixedNow.AddDate(0, 0, -1)
	expiring := activeContract()
	expiring.ID = "c-3"
	expiring.EndDate = fixedNow.AddDate(0, 0, 10)
	pending := activeContract()
	pending.ID = "c-4"
	pending.StatusOverride = entities.ContractStatusPendenteAprovacao

	store.EXPECT().ListContracts(gomock.Any()).Return([]entities.Contract{activeContract(), expired, expiring, pending}, nil)

	counts, err := uc.RefreshStatuses(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for status, want := range map[entities.ContractStatus]int{
		entities.ContractStatusAtivo:             1,
		entities.ContractStatusVencido:           1,
		entities.ContractStatusVencendo:          1,
		entities.ContractStatusPendenteAprovacao: 1,
	} {
		if counts[status] != want {
			t.Fatalf("expected %d %s, got %d", want, status, counts[status])
		}
	}
}

func TestAmendmentUseCase_ApplyAmendment(t *testing.T) {
	t.Run("input errors never reach the store", func(t *testing.T) {
		uc := NewAmendmentUseCase(nil, fixedOptions())
		for _, in := range []AmendmentInput{
			{ContractID: "", Type: "valor"},
			{ContractID: "c-1", Type: "reajuste"},
			{ContractID: "c-1", Type: "periodo", NewEndDate: "amanhã"},
			{ContractID: "c-1", Type: "periodo"},
		} {
			if _, err := uc.ApplyAmendment(context.Background(), in); !errors.Is(err, entities.ErrValidation) {
				t.Fatalf("expected validation error for %+v, got %v", in, err)
			}
		}
	})

	t.Run("value amendment updates every item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		tx := mock_interfaces.NewMockILedgerTx(ctrl)
		uc := NewAmendmentUseCase(store, fixedOptions())

		store.EXPECT().WithinContract(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(runIn(tx))
		tx.EXPECT().GetContract(gomock.Any(), "c-1").Return(activeContract(), nil)
		tx.EXPECT().ListItems(gomock.Any(), "c-1").Return(contractItems(), nil)
		tx.EXPECT().InsertAmendment(gomock.Any(), gomock.AssignableToTypeOf(entities.Amendment{})).Return(nil)
		tx.EXPECT().UpdateItemQuantity(gomock.Any(), "c-1", "i-1", decEq("110")).Return(nil)
		tx.EXPECT().UpdateItemQuantity(gomock.Any(), "c-1", "i-2", decEq("55")).Return(nil)

		a, err := uc.ApplyAmendment(context.Background(), AmendmentInput{ContractID: "c-1", Type: "VALOR", Percentage: dec("10")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !a.ApplyToAllItems || a.Type != entities.AmendmentTypeValor {
			t.Fatalf("unexpected amendment %+v", a)
		}
	})

	t.Run("period amendment accepts the brazilian date layout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		tx := mock_interfaces.NewMockILedgerTx(ctrl)
		uc := NewAmendmentUseCase(store, fixedOptions())
		end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

		store.EXPECT().WithinContract(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(runIn(tx))
		tx.EXPECT().GetContract(gomock.Any(), "c-1").Return(activeContract(), nil)
		tx.EXPECT().ListItems(gomock.Any(), "c-1").Return(contractItems(), nil)
		tx.EXPECT().InsertAmendment(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().UpdateContractEndDate(gomock.Any(), "c-1", gomock.AssignableToTypeOf(end)).Return(nil)

		a, err := uc.ApplyAmendment(context.Background(), AmendmentInput{ContractID: "c-1", Type: "periodo", NewEndDate: "30/06/2026"})
		if err != nil || a.NewEndDate == nil || !a.NewEndDate.Equal(end) {
			t.Fatalf("unexpected amendment %+v err=%v", a, err)
		}
	})
}

func TestBalanceCache(t *testing.T) {
	if NewBalanceCache(0) != nil {
		t.Fatalf("expected a disabled cache")
	}
	var disabled *BalanceCache
	disabled.Put("c-1", disabled.Stamp(), services.ContractBalance{ContractID: "c-1"})
	if _, ok := disabled.Get("c-1"); ok {
		t.Fatalf("nil cache must never hit")
	}

	cache := NewBalanceCache(time.Minute)
	clock := fixedNow
	cache.now = func() time.Time { return clock }

	cache.Put("c-1", cache.Stamp(), services.ContractBalance{ContractID: "c-1"})
	if b, ok := cache.Get("c-1"); !ok || b.ContractID != "c-1" {
		t.Fatalf("expected a hit, got %+v %v", b, ok)
	}
	clock = clock.Add(time.Minute)
	if _, ok := cache.Get("c-1"); ok {
		t.Fatalf("expected the entry to expire")
	}

	cache.Put("c-1", cache.Stamp(), services.ContractBalance{ContractID: "c-1"})
	cache.Invalidate("c-1")
	if _, ok := cache.Get("c-1"); ok {
		t.Fatalf("expected the entry to be invalidated")
	}

	t.Run("read started before an invalidation is not stored", func(t *testing.T) {
		stamp := cache.Stamp()
		cache.Invalidate("c-1")
		cache.Put("c-1", stamp, services.ContractBalance{ContractID: "c-1"})
		if _, ok := cache.Get("c-1"); ok {
			t.Fatalf("expected the stale balance to be dropped")
		}

		stamp = cache.Stamp()
		cache.InvalidateAll()
		cache.Put("c-1", stamp, services.ContractBalance{ContractID: "c-1"})
		if _, ok := cache.Get("c-1"); ok {
			t.Fatalf("expected the stale balance to be dropped after a reset")
		}
	})

	t.Run("other contracts keep caching", func(t *testing.T) {
		stamp := cache.Stamp()
		cache.Invalidate("c-1")
		cache.Put("c-2", stamp, services.ContractBalance{ContractID: "c-2"})
		if _, ok := cache.Get("c-2"); !ok {
			t.Fatalf("expected c-2 to be cached")
		}
	})
}

func TestBalanceUseCase_WriteDuringReadIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockILedgerStore(ctrl)
	cache := NewBalanceCache(time.Minute)
	uc := NewBalanceUseCase(store, cache, fixedOptions())

	store.EXPECT().GetContract(gomock.Any(), "c-1").Return(activeContract(), nil)
	store.EXPECT().ListItems(gomock.Any(), "c-1").Return(contractItems(), nil)
	store.EXPECT().ListOrdersForContract(gomock.Any(), "c-1").Return(nil, nil)
	// an approval commits while the records are being read
	store.EXPECT().ListConsumptionRecordsByContract(gomock.Any(), "c-1").DoAndReturn(
		func(_ context.Context, contractID string) ([]entities.ConsumptionRecord, error) {
			cache.Invalidate(contractID)
			return nil, nil
		})

	b, err := uc.GetBalance(context.Background(), "c-1")
	if err != nil || !b.ConsumedValue.IsZero() {
		t.Fatalf("unexpected balance %+v err=%v", b, err)
	}
	if _, ok := cache.Get("c-1"); ok {
		t.Fatalf("balance read before the approval must not be cached")
	}
}
