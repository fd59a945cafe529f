package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestao_contratos/internal/adapter/http/handlers/mocks"
	"gestao_contratos/internal/domain/entities"
	"gestao_contratos/internal/domain/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type thresholdMatcher struct{ want decimal.Decimal }

func (m thresholdMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m thresholdMatcher) String() string { return "threshold " + m.want.String() }

func TestAlertHandler_ListAlerts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	alerts := []services.Alert{{
		Contract: entities.Contract{ID: "c-1", Number: "012/2025", Suppliers: []string{"Papelaria Central"}},
		Item: services.ItemBalance{
			ItemID:          "i-1",
			Description:     "Papel A4",
			OriginalQty:     decimal.NewFromInt(100),
			ConsumedQty:     decimal.NewFromInt(95),
			PercentConsumed: decimal.NewFromInt(95),
		},
	}}

	t.Run("default threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAlertUseCase(ctrl)
		h := NewAlertHandler(uc)
		r := gin.New()
		r.GET("/v1/alerts", h.ListAlerts)

		uc.EXPECT().DefaultThreshold().Return(decimal.NewFromInt(90))
		uc.EXPECT().ListAlerts(gomock.Any(), thresholdMatcher{decimal.NewFromInt(90)}).Return(alerts, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/alerts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []struct {
			ItemID              string `json:"item_id"`
			Descricao           string `json:"descricao"`
			QuantidadeConsumida string `json:"quantidade_consumida"`
			PercentualConsumido string `json:"percentual_consumido"`
			Contrato            struct {
				Numero       string   `json:"numero"`
				Fornecedores []string `json:"fornecedores"`
			} `json:"contrato"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 1 || body[0].PercentualConsumido != "95" || body[0].Contrato.Numero != "012/2025" || body[0].Descricao != "Papel A4" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("explicit threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAlertUseCase(ctrl)
		h := NewAlertHandler(uc)
		r := gin.New()
		r.GET("/v1/alerts", h.ListAlerts)

		uc.EXPECT().DefaultThreshold().Return(decimal.NewFromInt(90))
		uc.EXPECT().ListAlerts(gomock.Any(), thresholdMatcher{decimal.RequireFromString("75.5")}).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/alerts?threshold=75.5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 with an empty list, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAlertUseCase(ctrl)
		h := NewAlertHandler(uc)
		r := gin.New()
		r.GET("/v1/alerts", h.ListAlerts)

		uc.EXPECT().DefaultThreshold().Return(decimal.NewFromInt(90))

		req := httptest.NewRequest(http.MethodGet, "/v1/alerts?threshold=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
