package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestao_contratos/internal/adapter/http/handlers/mocks"
	"gestao_contratos/internal/domain/entities"
	"gestao_contratos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestAmendmentHandler_ApplyAmendment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("per item percentages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAmendmentUseCase(ctrl)
		h := NewAmendmentHandler(uc)
		r := gin.New()
		r.POST("/v1/amendments", h.ApplyAmendment)

		uc.EXPECT().ApplyAmendment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.AmendmentInput) (entities.Amendment, error) {
				if in.Type != "valor" || in.CreatedBy != "gestor" || !in.PerItemPercentages["i-1"].Equal(decimal.NewFromInt(25)) {
					t.Fatalf("unexpected input %+v", in)
				}
				return entities.Amendment{ID: "a-1", ContractID: "c-1", Type: entities.AmendmentTypeValor, PerItemPercentages: in.PerItemPercentages, CreatedAt: time.Now()}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/amendments", bytes.NewBufferString(`{"contrato_id":"c-1","tipo":"valor","percentuais_por_item":{"i-1":25}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "gestor")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("invalid percentage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAmendmentUseCase(ctrl)
		h := NewAmendmentHandler(uc)
		r := gin.New()
		r.POST("/v1/amendments", h.ApplyAmendment)

		uc.EXPECT().ApplyAmendment(gomock.Any(), gomock.Any()).Return(entities.Amendment{}, entities.ErrInvalidPercentage)

		req := httptest.NewRequest(http.MethodPost, "/v1/amendments", bytes.NewBufferString(`{"contrato_id":"c-1","tipo":"valor","percentual_itens":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("expired contract cannot take a value amendment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAmendmentUseCase(ctrl)
		h := NewAmendmentHandler(uc)
		r := gin.New()
		r.POST("/v1/amendments", h.ApplyAmendment)

		uc.EXPECT().ApplyAmendment(gomock.Any(), gomock.Any()).Return(entities.Amendment{}, usecase.ErrContractNotEditable)

		req := httptest.NewRequest(http.MethodPost, "/v1/amendments", bytes.NewBufferString(`{"contrato_id":"c-1","tipo":"valor","percentual_itens":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
