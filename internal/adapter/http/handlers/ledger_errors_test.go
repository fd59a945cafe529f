package handlers

import (
	"errors"
	"net/http"
	"testing"

	"gestao_contratos/internal/domain/entities"
	"gestao_contratos/internal/usecase"
	"gestao_contratos/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func TestMapLedgerError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"not found", usecase.ErrContractNotFound, "NOT_FOUND", http.StatusNotFound},
		{"validation", usecase.ErrJustificationRequired, "VALIDATION_ERROR", http.StatusBadRequest},
		{"invalid order number", entities.ErrInvalidOrderNumber, "VALIDATION_ERROR", http.StatusBadRequest},
		{"ambiguous fund", usecase.ErrFundAmbiguous, "AMBIGUOUS_FUND", http.StatusUnprocessableEntity},
		{"state transition", usecase.ErrRequestNotPending, "INVALID_STATE_TRANSITION", http.StatusConflict},
		{"conflict", interfaces.ErrConflict, "CONFLICT", http.StatusConflict},
		{"unknown", errors.New("db down"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapLedgerError(tc.err)
			if got.Code != tc.code || got.HTTPStatus != tc.status {
				t.Fatalf("expected %s/%d, got %s/%d", tc.code, tc.status, got.Code, got.HTTPStatus)
			}
		})
	}

	t.Run("insufficient balance carries the shortfall", func(t *testing.T) {
		err := &entities.InsufficientBalanceError{
			ItemID:      "i-1",
			Description: "Papel A4",
			Requested:   decimal.NewFromInt(10),
			Available:   decimal.NewFromInt(5),
		}
		got := mapLedgerError(err)
		if got.Code != "INSUFFICIENT_BALANCE" || got.HTTPStatus != http.StatusUnprocessableEntity {
			t.Fatalf("unexpected %s/%d", got.Code, got.HTTPStatus)
		}
		details, ok := got.Details.(insufficientBalanceDetails)
		if !ok || details.ItemID != "i-1" || !details.Faltante.Equal(decimal.NewFromInt(5)) {
			t.Fatalf("unexpected details %+v", got.Details)
		}
	})

	t.Run("internal errors are not exposed", func(t *testing.T) {
		body := mapLedgerError(errors.New("pq: password authentication failed")).ToHTTPError()
		if body.Message != "An internal error occurred" {
			t.Fatalf("leaked message %q", body.Message)
		}
	})
}
