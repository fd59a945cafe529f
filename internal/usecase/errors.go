package usecase

import (
	"errors"

	"gestao_contratos/internal/domain/entities"
)

var (
	ErrInvalidContractID = entities.NewError(entities.ErrValidation, "invalid contract id")
	ErrInvalidItemID     = entities.NewError(entities.ErrValidation, "invalid item id")
	ErrInvalidOrderID    = entities.NewError(entities.ErrValidation, "invalid order id")
	ErrInvalidRequestID  = entities.NewError(entities.ErrValidation, "invalid order request id")

	ErrContractNotFound     = entities.NewError(entities.ErrNotFound, "contract not found")
	ErrItemNotFound         = entities.ErrItemNotFound
	ErrOrderNotFound        = entities.NewError(entities.ErrNotFound, "order not found")
	ErrOrderRequestNotFound = entities.NewError(entities.ErrNotFound, "order request not found")
)

// Contract administration.
var (
	ErrContractNumberRequired = entities.NewError(entities.ErrValidation, "contract number is required")
	ErrSupplierRequired       = entities.NewError(entities.ErrValidation, "at least one supplier is required")
	ErrContractFundRequired   = entities.NewError(entities.ErrValidation, "at least one fund is required")
	ErrInvalidPeriod          = entities.NewError(entities.ErrValidation, "start date must not be after end date")
	ErrItemDescriptionMissing = entities.NewError(entities.ErrValidation, "item description is required")
	ErrInvalidUnitPrice       = entities.NewError(entities.ErrValidation, "unit price must not be negative")
	ErrItemHasConsumption     = entities.NewError(entities.ErrValidation, "item with consumption cannot be deleted")
	ErrContractNotEditable    = entities.NewError(entities.ErrInvalidStateTransition, "contract is expired or pending approval")
)

// Amendments.
var (
	ErrInvalidDate = entities.NewError(entities.ErrValidation, "invalid date, expected YYYY-MM-DD or DD/MM/YYYY")
)

// Order requests and orders.
var (
	ErrJustificationRequired     = entities.NewError(entities.ErrValidation, "justification is required")
	ErrNoRequestedItems          = entities.NewError(entities.ErrValidation, "at least one item is required")
	ErrTotalQuantityMismatch     = entities.NewError(entities.ErrValidation, "total quantity does not match the sum of items")
	ErrRequesterRequired         = entities.NewError(entities.ErrValidation, "requester is required")
	ErrFundRequired              = entities.NewError(entities.ErrValidation, "fund is required")
	ErrFundNotAllowed            = entities.NewError(entities.ErrValidation, "fund is not available for this requester, contract or item")
	ErrFundAmbiguous             = entities.NewError(entities.ErrAmbiguousFund, "requester has more than one fund, choose one")
	ErrContractNotAcceptingOrder = entities.NewError(entities.ErrInvalidStateTransition, "contract does not accept orders")
	ErrRequestNotPending         = entities.NewError(entities.ErrInvalidStateTransition, "order request is not pending")
	ErrReasonRequired            = entities.NewError(entities.ErrValidation, "reason is required")
	ErrDeciderRequired           = entities.NewError(entities.ErrValidation, "decider is required")
	ErrNotRequester              = entities.NewError(entities.ErrValidation, "only the requester can cancel the request")
	ErrOrderSequenceExhausted    = errors.New("order sequence exhausted for the year")
)

// Alerts.
var (
	ErrInvalidThreshold = entities.NewError(entities.ErrValidation, "threshold must be between 0 and 100")
)
