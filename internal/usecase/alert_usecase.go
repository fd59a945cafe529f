package usecase

import (
	"context"

	"gestao_contratos/internal/domain/services"
	"gestao_contratos/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// IAlertUseCase lists items whose consumption reached a threshold.
type IAlertUseCase interface {
	ListAlerts(ctx context.Context, threshold decimal.Decimal) ([]services.Alert, error)
	DefaultThreshold() decimal.Decimal
}

type AlertUseCase struct {
	ledger
	cache     *BalanceCache
	threshold decimal.Decimal
}

var _ IAlertUseCase = (*AlertUseCase)(nil)

// NewAlertUseCase uses services.DefaultAlertThreshold when threshold is not positive.
func NewAlertUseCase(store interfaces.ILedgerStore, cache *BalanceCache, threshold decimal.Decimal, opts Options) *AlertUseCase {
	if !threshold.IsPositive() {
		threshold = services.DefaultAlertThreshold
	}
	return &AlertUseCase{ledger: newLedger(store, opts), cache: cache, threshold: threshold}
}

func (u *AlertUseCase) DefaultThreshold() decimal.Decimal {
	return u.threshold
}

// ListAlerts scans every contract. Balances come from the cache when fresh.
func (u *AlertUseCase) ListAlerts(ctx context.Context, threshold decimal.Decimal) ([]services.Alert, error) {
	if threshold.IsNegative() || threshold.GreaterThan(decimal.NewFromInt(100)) {
		return nil, ErrInvalidThreshold
	}

	stamp := u.cache.Stamp()
	contracts, err := u.store.ListContracts(ctx)
	if err != nil {
		return nil, err
	}
	now := u.now()
	balances := make(map[string]services.ContractBalance, len(contracts))
	for i := range contracts {
		c := &contracts[i]
		c.Status = c.StatusAt(now, u.opts.ExpiringWindow)
		if b, ok := u.cache.Get(c.ID); ok {
			balances[c.ID] = b
			continue
		}
		_, b, err := u.balance(ctx, u.store, *c)
		if err != nil {
			return nil, err
		}
		u.cache.Put(c.ID, stamp, b)
		balances[c.ID] = b
	}
	return services.SelectAlerts(contracts, balances, threshold), nil
}
