package handlers

import (
	"errors"
	"net/http"
	"strings"

	"gestao_contratos/internal/domain/entities"
	"gestao_contratos/internal/usecase"
	"gestao_contratos/internal/usecase/interfaces"
	"gestao_contratos/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	headerUserID    = "X-User-ID"
	headerUserFunds = "X-User-Funds"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errMissingUser    = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "X-User-ID header is required", http.StatusBadRequest)
)

type insufficientBalanceDetails struct {
	ItemID     string          `json:"item_id"`
	Descricao  string          `json:"descricao,omitempty"`
	Solicitado decimal.Decimal `json:"solicitado"`
	Disponivel decimal.Decimal `json:"disponivel"`
	Faltante   decimal.Decimal `json:"faltante"`
}

// mapLedgerError turns an error kind into the response the client sees. The message of
// the specific error is kept; only internal errors are hidden.
func mapLedgerError(err error) *pkg.AppError {
	var ibe *entities.InsufficientBalanceError
	switch {
	case errors.As(err, &ibe):
		return pkg.NewDomainError("INSUFFICIENT_BALANCE", ibe.Error(), err, http.StatusUnprocessableEntity).WithDetails(insufficientBalanceDetails{
			ItemID:     ibe.ItemID,
			Descricao:  ibe.Description,
			Solicitado: ibe.Requested,
			Disponivel: ibe.Available,
			Faltante:   ibe.Shortfall(),
		})
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrAmbiguousFund):
		return pkg.NewDomainError("AMBIGUOUS_FUND", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInvalidStateTransition):
		return pkg.NewDomainError("INVALID_STATE_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, interfaces.ErrConflict):
		return pkg.NewDomainError("CONFLICT", "The contract was changed concurrently, try again", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// requester reads who is calling from the headers set by the gateway in front of the API.
// X-User-Funds is a comma separated list.
func requester(c *gin.Context) (usecase.Requester, bool) {
	id := strings.TrimSpace(c.GetHeader(headerUserID))
	if id == "" {
		return usecase.Requester{}, false
	}
	var funds []string
	for _, f := range strings.Split(c.GetHeader(headerUserFunds), ",") {
		if f = strings.TrimSpace(f); f != "" {
			funds = append(funds, f)
		}
	}
	return usecase.Requester{ID: id, Funds: funds}, true
}
