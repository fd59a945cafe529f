package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"gestao_contratos/internal/domain/entities"
	"gestao_contratos/internal/domain/services"
	"gestao_contratos/internal/usecase/interfaces"
)

const DefaultMaxConflictRetries = 3

// Options are shared by every ledger use case.
type Options struct {
	// ExpiringWindow flags contracts close to their end date. Zero uses the default.
	ExpiringWindow time.Duration
	// MaxConflictRetries bounds retries of a transaction that lost a race.
	MaxConflictRetries int
	// Now is the clock; its location defines the calendar day and year.
	Now func() time.Time
	// OnLedgerChange runs after every committed write of a contract.
	OnLedgerChange func(contractID string)
}

func (o Options) withDefaults() Options {
	if o.ExpiringWindow <= 0 {
		o.ExpiringWindow = entities.DefaultExpiringWindow
	}
	if o.MaxConflictRetries < 0 {
		o.MaxConflictRetries = 0
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// ledger bundles the store with the options and the transaction retry loop.
type ledger struct {
	store interfaces.ILedgerStore
	opts  Options
}

func newLedger(store interfaces.ILedgerStore, opts Options) ledger {
	return ledger{store: store, opts: opts.withDefaults()}
}

func (l ledger) now() time.Time {
	return l.opts.Now()
}

// within runs fn in a contract transaction, retrying it from scratch when the store reports
// a conflict. A conflict means nothing was committed.
func (l ledger) within(ctx context.Context, area, contractID string, fn func(tx interfaces.ILedgerTx) error) error {
	for attempt := 0; ; attempt++ {
		err := l.store.WithinContract(ctx, contractID, fn)
		if err == nil {
			if l.opts.OnLedgerChange != nil {
				l.opts.OnLedgerChange(contractID)
			}
			return nil
		}
		if !errors.Is(err, interfaces.ErrConflict) || attempt >= l.opts.MaxConflictRetries {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.Printf("[%s][usecase] conflict, retrying contract_id=%s attempt=%d", area, contractID, attempt+1)
	}
}

// contract loads a contract with its derived status, or ErrContractNotFound.
func (l ledger) contract(ctx context.Context, r interfaces.ILedgerReader, id string) (entities.Contract, error) {
	c, err := r.GetContract(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	c.Status = c.StatusAt(l.now(), l.opts.ExpiringWindow)
	return c, nil
}

func (l ledger) acceptsOrders(c entities.Contract) bool {
	return c.AcceptsOrders(l.now(), l.opts.ExpiringWindow)
}

// balance loads everything the balance calculator needs for the contract.
func (l ledger) balance(ctx context.Context, r interfaces.ILedgerReader, c entities.Contract) ([]entities.Item, services.ContractBalance, error) {
	items, err := r.ListItems(ctx, c.ID)
	if err != nil {
		return nil, services.ContractBalance{}, err
	}
	orders, err := r.ListOrdersForContract(ctx, c.ID)
	if err != nil {
		return nil, services.ContractBalance{}, err
	}
	records, err := r.ListConsumptionRecordsByContract(ctx, c.ID)
	if err != nil {
		return nil, services.ContractBalance{}, err
	}
	return items, services.CalculateBalance(c.ID, items, orders, records), nil
}
