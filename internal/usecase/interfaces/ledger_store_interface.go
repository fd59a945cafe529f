package interfaces

import (
	"context"
	"errors"
	"gestao_contratos/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=ledger_store_interface.go -destination=mocks/mock_ledger_store_interface.go -package=mock_interfaces

// ErrConflict is returned when a transaction lost a race against another writer of the
// same contract (version or sequence compare-and-swap failed, unique key violated).
// Nothing was committed and the whole transaction may be retried.
var ErrConflict = errors.New("concurrent modification")

// ILedgerReader reads contracts and their ledger.
//
// Getters follow the repository convention of returning a zero value (ID == "")
// with a nil error when nothing matches.
type ILedgerReader interface {
	GetContract(ctx context.Context, id string) (entities.Contract, error)
	ListContracts(ctx context.Context) ([]entities.Contract, error)
	ListItems(ctx context.Context, contractID string) ([]entities.Item, error)
	GetItem(ctx context.Context, contractID, itemID string) (entities.Item, error)
	ListAmendments(ctx context.Context, contractID string) ([]entities.Amendment, error)

	GetOrderRequest(ctx context.Context, id string) (entities.OrderRequest, error)
	ListOrderRequests(ctx context.Context, contractID string) ([]entities.OrderRequest, error)

	GetOrder(ctx context.Context, id string) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, number entities.OrderNumber) (entities.Order, error)
	ListOrdersForContract(ctx context.Context, contractID string) ([]entities.Order, error)

	ListConsumptionRecordsByOrder(ctx context.Context, orderID string) ([]entities.ConsumptionRecord, error)
	ListConsumptionRecordsByItem(ctx context.Context, itemID string) ([]entities.ConsumptionRecord, error)
	ListConsumptionRecordsByContract(ctx context.Context, contractID string) ([]entities.ConsumptionRecord, error)
}

// ILedgerTx is a transaction scoped to one contract. Reads return committed state and
// writes become visible together on commit, so callers read what they need first.
type ILedgerTx interface {
	ILedgerReader

	UpdateContractEndDate(ctx context.Context, contractID string, end time.Time) error
	InsertItem(ctx context.Context, item entities.Item) error
	DeleteItem(ctx context.Context, contractID, itemID string) error
	UpdateItemQuantity(ctx context.Context, contractID, itemID string, quantity decimal.Decimal) error
	InsertAmendment(ctx context.Context, a entities.Amendment) error

	InsertOrderRequest(ctx context.Context, r entities.OrderRequest) error
	UpdateOrderRequestStatus(ctx context.Context, r entities.OrderRequest) error

	// NextOrderSequence reserves the next order sequence of year. The reservation is
	// part of the transaction and is released if it rolls back.
	NextOrderSequence(ctx context.Context, year int) (int, error)
	InsertOrder(ctx context.Context, o entities.Order) error
	TouchOrder(ctx context.Context, o entities.Order) error

	InsertConsumptionRecords(ctx context.Context, records []entities.ConsumptionRecord) error
	UpdateConsumptionRecord(ctx context.Context, r entities.ConsumptionRecord) error
	DeleteConsumptionRecords(ctx context.Context, orderID string, ids []string) error
}

// ILedgerStore is the persistence boundary of the ledger.
type ILedgerStore interface {
	ILedgerReader

	CreateContract(ctx context.Context, c entities.Contract) (entities.Contract, error)

	// WithinContract runs fn in one transaction serialized with every other transaction
	// of contractID. fn's error rolls everything back and is returned as is.
	WithinContract(ctx context.Context, contractID string, fn func(tx ILedgerTx) error) error
}
