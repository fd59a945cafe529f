package usecase

import (
	"context"
	"errors"
	"testing"

	"gestao_contratos/internal/domain/entities"
	"gestao_contratos/internal/domain/services"
	"gestao_contratos/internal/usecase/interfaces"
	mock_interfaces "gestao_contratos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validSubmit() SubmitInput {
	return SubmitInput{
		ContractID:    "c-1",
		Requester:     Requester{ID: "u-1", Funds: []string{"Saúde"}},
		Justification: "reposição do almoxarifado",
		Items:         []services.Entry{{ItemID: "i-2", Quantity: dec("5")}},
	}
}

func TestOrderRequestUseCase_SubmitValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(in *SubmitInput)
		want   error
	}{
		{"missing contract", func(in *SubmitInput) { in.ContractID = " " }, ErrInvalidContractID},
		{"missing requester", func(in *SubmitInput) { in.Requester.ID = "" }, ErrRequesterRequired},
		{"missing justification", func(in *SubmitInput) { in.Justification = "   " }, ErrJustificationRequired},
		{"no items", func(in *SubmitInput) { in.Items = nil }, ErrNoRequestedItems},
		{"zero quantity", func(in *SubmitInput) { in.Items[0].Quantity = dec("0") }, entities.ErrInvalidQuantity},
		{"total mismatch", func(in *SubmitInput) { in.TotalQuantity = dec("6") }, ErrTotalQuantityMismatch},
		{"no fund at all", func(in *SubmitInput) { in.Requester.Funds = nil }, ErrFundRequired},
		{"fund outside requester funds", func(in *SubmitInput) { in.Fund = "Obras" }, ErrFundNotAllowed},
		{"ambiguous fund", func(in *SubmitInput) { in.Requester.Funds = []string{"Saúde", "Educação"} }, ErrFundAmbiguous},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewOrderRequestUseCase(nil, fixedOptions())
			in := validSubmit()
			tc.mutate(&in)

			_, err := uc.Submit(context.Background(), in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("ambiguous fund has its own kind", func(t *testing.T) {
		uc := NewOrderRequestUseCase(nil, fixedOptions())
		in := validSubmit()
		in.Requester.Funds = []string{"Saúde", "Educação"}

		_, err := uc.Submit(context.Background(), in)
		if !errors.Is(err, entities.ErrAmbiguousFund) || errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected only the ambiguous fund kind, got %v", err)
		}
	})
}

func TestOrderRequestUseCase_Submit(t *testing.T) {
	t.Run("single fund requester defaults to it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		tx := mock_interfaces.NewMockILedgerTx(ctrl)
		uc := NewOrderRequestUseCase(store, fixedOptions())

		store.EXPECT().WithinContract(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(runIn(tx))
		tx.EXPECT().GetContract(gomock.Any(), "c-1").Return(activeContract(), nil)
		expectBalanceReads(tx)
		tx.EXPECT().InsertOrderRequest(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderRequest{})).DoAndReturn(
			func(_ context.Context, r entities.OrderRequest) error {
				if r.Fund != "Saúde" || r.Status != entities.OrderRequestStatusPendente || r.RequesterID != "u-1" {
					t.Fatalf("unexpected request: %+v", r)
				}
				return nil
			},
		)

		r, err := uc.Submit(context.Background(), validSubmit())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.ID == "" || !r.TotalQuantity().Equal(dec("5")) {
			t.Fatalf("unexpected request %+v", r)
		}
	})

	t.Run("contract not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		tx := mock_interfaces.NewMockILedgerTx(ctrl)
		uc := NewOrderRequestUseCase(store, fixedOptions())

		store.EXPECT().WithinContract(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(runIn(tx))
		tx.EXPECT().GetContract(gomock.Any(), "c-1").Return(entities.Contract{}, nil)

		_, err := uc.Submit(context.Background(), validSubmit())
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("expired contract does not accept orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		tx := mock_interfaces.NewMockILedgerTx(ctrl)
		uc := NewOrderRequestUseCase(store, fixedOptions())

		expired := activeContract()
		expired.EndDate = fixedNow.AddDate(0, 0, -1)
		store.EXPECT().WithinContract(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(runIn(tx))
		tx.EXPECT().GetContract(gomock.Any(), "c-1").Return(expired, nil)

		_, err := uc.Submit(context.Background(), validSubmit())
		if !errors.Is(err, ErrContractNotAcceptingOrder) {
			t.Fatalf("expected ErrContractNotAcceptingOrder, got %v", err)
		}
	})

	t.Run("fails fast on insufficient balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		tx := mock_interfaces.NewMockILedgerTx(ctrl)
		uc := NewOrderRequestUseCase(store, fixedOptions())

		store.EXPECT().WithinContract(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(runIn(tx))
		tx.EXPECT().GetContract(gomock.Any(), "c-1").Return(activeContract(), nil)
		expectBalanceReads(tx)

		in := validSubmit()
		in.Items = []services.Entry{{ItemID: "i-1", Quantity: dec("10")}}
		_, err := uc.Submit(context.Background(), in)

		var ibe *entities.InsufficientBalanceError
		if !errors.As(err, &ibe) {
			t.Fatalf("expected InsufficientBalanceError, got %v", err)
		}
		if ibe.ItemID != "i-1" || !ibe.Shortfall().Equal(dec("5")) {
			t.Fatalf("unexpected shortfall %+v", ibe)
		}
	})
}

func pendingRequestFixture() entities.OrderRequest {
	return entities.OrderRequest{
		ID:            "r-1",
		ContractID:    "c-1",
		RequesterID:   "u-1",
		Fund:          "Saúde",
		Justification: "reposição",
		Items:         []entities.RequestedItem{{ItemID: "i-1", Quantity: dec("5")}, {ItemID: "i-2", Quantity: dec("3")}},
		Status:        entities.OrderRequestStatusPendente,
	}
}

func TestOrderRequestUseCase_Approve(t *testing.T) {
	t.Run("requires approver", func(t *testing.T) {
		uc := NewOrderRequestUseCase(nil, fixedOptions())
		_, err := uc.Approve(context.Background(), "r-1", " ")
		if !errors.Is(err, ErrDeciderRequired) {
			t.Fatalf("expected ErrDeciderRequired, got %v", err)
		}
	})

	t.Run("unknown request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewOrderRequestUseCase(store, fixedOptions())

		store.EXPECT().GetOrderRequest(gomock.Any(), "r-1").Return(entities.OrderRequest{}, nil)

		_, err := uc.Approve(context.Background(), "r-1", "admin")
		if !errors.Is(err, ErrOrderRequestNotFound) {
			t.Fatalf("expected ErrOrderRequestNotFound, got %v", err)
		}
	})

	t.Run("success commits order, records and decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		tx := mock_interfaces.NewMockILedgerTx(ctrl)
		uc := NewOrderRequestUseCase(store, fixedOptions())

		var insertedOrder entities.Order
		store.EXPECT().GetOrderRequest(gomock.Any(), "r-1").Return(pendingRequestFixture(), nil)
		store.EXPECT().WithinContract(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(runIn(tx))
		tx.EXPECT().GetOrderRequest(gomock.Any(), "r-1").Return(pendingRequestFixture(), nil)
		tx.EXPECT().GetContract(gomock.Any(), "c-1").Return(activeContract(), nil)
		expectBalanceReads(tx)
		tx.EXPECT().NextOrderSequence(gomock.Any(), 2025).Return(7, nil)
		tx.EXPECT().InsertOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.Order) error {
			insertedOrder = o
			return nil
		})
		tx.EXPECT().InsertConsumptionRecords(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, recs []entities.ConsumptionRecord) error {
			if len(recs) != 2 || recs[0].OrderID != insertedOrder.ID || recs[0].ContractID != "c-1" {
				t.Fatalf("unexpected records %+v", recs)
			}
			return nil
		})
		tx.EXPECT().UpdateOrderRequestStatus(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.OrderRequest) error {
			if r.Status != entities.OrderRequestStatusAprovada || r.DecidedBy != "admin" || r.DecidedAt == nil {
				t.Fatalf("unexpected decision %+v", r)
			}
			if r.OrderNumber != "0007/2025" || r.OrderID != insertedOrder.ID {
				t.Fatalf("unexpected order link %+v", r)
			}
			return nil
		})

		n, err := uc.Approve(context.Background(), "r-1", "admin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.String() != "0007/2025" {
			t.Fatalf("expected 0007/2025, got %s", n)
		}
	})

	t.Run("insufficient balance writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		tx := mock_interfaces.NewMockILedgerTx(ctrl)
		uc := NewOrderRequestUseCase(store, fixedOptions())

		r := pendingRequestFixture()
		r.Items[0].Quantity = dec("10")
		store.EXPECT().GetOrderRequest(gomock.Any(), "r-1").Return(r, nil)
		store.EXPECT().WithinContract(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(runIn(tx))
		tx.EXPECT().GetOrderRequest(gomock.Any(), "r-1").Return(r, nil)
		tx.EXPECT().GetContract(gomock.Any(), "c-1").Return(activeContract(), nil)
		expectBalanceReads(tx)

		_, err := uc.Approve(context.Background(), "r-1", "admin")
		if !errors.Is(err, entities.ErrInsufficientBalance) {
			t.Fatalf("expected insufficient balance, got %v", err)
		}
	})

	t.Run("already refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		tx := mock_interfaces.NewMockILedgerTx(ctrl)
		uc := NewOrderRequestUseCase(store, fixedOptions())

		refused := pendingRequestFixture()
		refused.Status = entities.OrderRequestStatusRecusada
		store.EXPECT().GetOrderRequest(gomock.Any(), "r-1").Return(refused, nil)
		store.EXPECT().WithinContract(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(runIn(tx))
		tx.EXPECT().GetOrderRequest(gomock.Any(), "r-1").Return(refused, nil)

		_, err := uc.Approve(context.Background(), "r-1", "admin")
		if !errors.Is(err, entities.ErrInvalidStateTransition) {
			t.Fatalf("expected invalid state transition, got %v", err)
		}
	})

	t.Run("conflict is retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		tx := mock_interfaces.NewMockILedgerTx(ctrl)
		opts := fixedOptions()
		opts.MaxConflictRetries = 1
		uc := NewOrderRequestUseCase(store, opts)

		store.EXPECT().GetOrderRequest(gomock.Any(), "r-1").Return(pendingRequestFixture(), nil)
		store.EXPECT().WithinContract(gomock.Any(), "c-1", gomock.Any()).Return(interfaces.ErrConflict)
		store.EXPECT().WithinContract(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(runIn(tx))
		tx.EXPECT().GetOrderRequest(gomock.Any(), "r-1").Return(pendingRequestFixture(), nil)
		tx.EXPECT().GetContract(gomock.Any(), "c-1").Return(activeContract(), nil)
		expectBalanceReads(tx)
		tx.EXPECT().NextOrderSequence(gomock.Any(), 2025).Return(1, nil)
		tx.EXPECT().InsertOrder(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().InsertConsumptionRecords(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().UpdateOrderRequestStatus(gomock.Any(), gomock.Any()).Return(nil)

		n, err := uc.Approve(context.Background(), "r-1", "admin")
		if err != nil || n.String() != "0001/2025" {
			t.Fatalf("expected 0001/2025, got %s err=%v", n, err)
		}
	})

	t.Run("conflict retries are bounded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		opts := fixedOptions()
		opts.MaxConflictRetries = 2
		uc := NewOrderRequestUseCase(store, opts)

		store.EXPECT().GetOrderRequest(gomock.Any(), "r-1").Return(pendingRequestFixture(), nil)
		store.EXPECT().WithinContract(gomock.Any(), "c-1", gomock.Any()).Return(interfaces.ErrConflict).Times(3)

		_, err := uc.Approve(context.Background(), "r-1", "admin")
		if !errors.Is(err, interfaces.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func TestOrderRequestUseCase_RefuseAndCancel(t *testing.T) {
	t.Run("refuse requires reason", func(t *testing.T) {
		uc := NewOrderRequestUseCase(nil, fixedOptions())
		_, err := uc.Refuse(context.Background(), "r-1", "admin", "  ")
		if !errors.Is(err, ErrReasonRequired) {
			t.Fatalf("expected ErrReasonRequired, got %v", err)
		}
	})

	t.Run("refuse stamps decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		tx := mock_interfaces.NewMockILedgerTx(ctrl)
		uc := NewOrderRequestUseCase(store, fixedOptions())

		store.EXPECT().GetOrderRequest(gomock.Any(), "r-1").Return(pendingRequestFixture(), nil)
		store.EXPECT().WithinContract(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(runIn(tx))
		tx.EXPECT().GetOrderRequest(gomock.Any(), "r-1").Return(pendingRequestFixture(), nil)
		tx.EXPECT().UpdateOrderRequestStatus(gomock.Any(), gomock.Any()).Return(nil)

		r, err := uc.Refuse(context.Background(), "r-1", "admin", "sem dotação")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != entities.OrderRequestStatusRecusada || r.DecisionReason != "sem dotação" || !r.DecidedAt.Equal(fixedNow) {
			t.Fatalf("unexpected request %+v", r)
		}
	})

	t.Run("refuse after approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		tx := mock_interfaces.NewMockILedgerTx(ctrl)
		uc := NewOrderRequestUseCase(store, fixedOptions())

		approved := pendingRequestFixture()
		approved.Status = entities.OrderRequestStatusAprovada
		store.EXPECT().GetOrderRequest(gomock.Any(), "r-1").Return(approved, nil)
		store.EXPECT().WithinContract(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(runIn(tx))
		tx.EXPECT().GetOrderRequest(gomock.Any(), "r-1").Return(approved, nil)

		_, err := uc.Refuse(context.Background(), "r-1", "admin", "tarde demais")
		if !errors.Is(err, ErrRequestNotPending) {
			t.Fatalf("expected ErrRequestNotPending, got %v", err)
		}
	})

	t.Run("cancel only by requester", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		tx := mock_interfaces.NewMockILedgerTx(ctrl)
		uc := NewOrderRequestUseCase(store, fixedOptions())

		store.EXPECT().GetOrderRequest(gomock.Any(), "r-1").Return(pendingRequestFixture(), nil)
		store.EXPECT().WithinContract(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(runIn(tx))
		tx.EXPECT().GetOrderRequest(gomock.Any(), "r-1").Return(pendingRequestFixture(), nil)

		_, err := uc.Cancel(context.Background(), "r-1", "u-2")
		if !errors.Is(err, ErrNotRequester) {
			t.Fatalf("expected ErrNotRequester, got %v", err)
		}
	})
}
