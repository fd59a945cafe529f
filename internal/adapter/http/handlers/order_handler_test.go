package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestao_contratos/internal/adapter/http/handlers/mocks"
	"gestao_contratos/internal/domain/entities"
	"gestao_contratos/internal/domain/services"
	"gestao_contratos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(uc *mocks.MockIOrderUseCase) *gin.Engine {
	h := NewOrderHandler(uc)
	r := gin.New()
	r.GET("/v1/orders", h.FindByNumber)
	r.GET("/v1/orders/:id", h.GetOrder)
	r.PUT("/v1/orders/:id/items", h.AdjustItems)
	return r
}

func TestOrderHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	detail := usecase.OrderDetail{
		Order: entities.Order{ID: "o-1", ContractID: "c-1", Number: entities.OrderNumber{Sequence: 3, Year: 2025}},
		Records: []entities.ConsumptionRecord{
			{ID: "rec-1", OrderID: "o-1", ItemID: "i-1", Quantity: decimal.NewFromInt(4)},
		},
	}

	t.Run("lookup needs a number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newOrderRouter(mocks.NewMockIOrderUseCase(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		uc.EXPECT().GetByNumber(gomock.Any(), "7/2025").Return(usecase.OrderDetail{}, entities.ErrInvalidOrderNumber)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?numero=7/2025", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("lookup by number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		uc.EXPECT().GetByNumber(gomock.Any(), "0003/2025").Return(detail, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?numero=0003/2025", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Numero string           `json:"numero"`
			Itens  []map[string]any `json:"itens"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Numero != "0003/2025" || len(body.Itens) != 1 || body.Itens[0]["quantidade"] != "4" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("adjust items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		want := []services.Entry{{ItemID: "i-1", Quantity: decimal.NewFromInt(4)}}
		uc.EXPECT().AdjustConsumption(gomock.Any(), "o-1", gomock.Len(1), "admin").DoAndReturn(
			func(_ context.Context, _ string, entries []services.Entry, _ string) (usecase.OrderDetail, error) {
				if entries[0].ItemID != want[0].ItemID || !entries[0].Quantity.Equal(want[0].Quantity) {
					t.Fatalf("unexpected entries %+v", entries)
				}
				return detail, nil
			})

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/o-1/items", bytes.NewBufferString(`{"itens":[{"item_id":"i-1","quantidade":4}]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "admin")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("adjust over the balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		uc.EXPECT().AdjustConsumption(gomock.Any(), "o-1", gomock.Any(), "admin").Return(usecase.OrderDetail{}, &entities.InsufficientBalanceError{
			ItemID: "i-1", Requested: decimal.NewFromInt(21), Available: decimal.NewFromInt(20),
		})

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/o-1/items", bytes.NewBufferString(`{"itens":[{"item_id":"i-1","quantidade":21}]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "admin")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}
