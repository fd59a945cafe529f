package entities

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Error kinds. Every error returned by the ledger wraps exactly one of them so the
// transport layer can map it without knowing the specific rule that failed.
var (
	ErrNotFound               = errors.New("not found")
	ErrValidation             = errors.New("validation error")
	ErrInsufficientBalance    = errors.New("insufficient balance")
	ErrAmbiguousFund          = errors.New("ambiguous fund")
	ErrInvalidStateTransition = errors.New("invalid state transition")
)

// Rule errors shared by the domain services.
var (
	ErrItemNotFound         = NewError(ErrNotFound, "item not found in contract")
	ErrInvalidQuantity      = NewError(ErrValidation, "quantity must be greater than zero")
	ErrInvalidPercentage    = NewError(ErrValidation, "percentage must be greater than zero")
	ErrUnknownAmendmentItem = NewError(ErrValidation, "amendment references an item outside the contract")
	ErrMissingEndDate       = NewError(ErrValidation, "period amendment requires a new end date")
	ErrInvalidAmendmentType = NewError(ErrValidation, "amendment type must be periodo or valor")
	ErrNoAmendmentTarget    = NewError(ErrValidation, "value amendment requires percentual_itens or percentuais_por_item")
	ErrAmendmentShrinksItem = NewError(ErrValidation, "value amendment would lower an item quantity after rounding")
)

type kindError struct {
	kind error
	msg  string
}

// NewError builds an error with its own message that still matches kind through errors.Is.
func NewError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// InsufficientBalanceError reports the item that could not absorb the requested quantity.
type InsufficientBalanceError struct {
	ItemID      string
	Description string
	Requested   decimal.Decimal
	Available   decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for item %s (%s): requested %s, available %s, short by %s",
		e.ItemID, e.Description, e.Requested.String(), e.Available.String(), e.Shortfall().String())
}

// Shortfall is how much the request exceeds the available balance.
func (e *InsufficientBalanceError) Shortfall() decimal.Decimal {
	return e.Requested.Sub(e.Available)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}
