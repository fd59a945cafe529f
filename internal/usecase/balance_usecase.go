package usecase

import (
	"context"
	"strings"

	"gestao_contratos/internal/domain/services"
	"gestao_contratos/internal/usecase/interfaces"
)

// IBalanceUseCase computes the consumption balance of a contract.
type IBalanceUseCase interface {
	GetBalance(ctx context.Context, contractID string) (services.ContractBalance, error)
}

type BalanceUseCase struct {
	ledger
	cache *BalanceCache
}

var _ IBalanceUseCase = (*BalanceUseCase)(nil)

// NewBalanceUseCase accepts a nil cache.
func NewBalanceUseCase(store interfaces.ILedgerStore, cache *BalanceCache, opts Options) *BalanceUseCase {
	return &BalanceUseCase{ledger: newLedger(store, opts), cache: cache}
}

// GetBalance always reads the ledger and refreshes the cached copy.
func (u *BalanceUseCase) GetBalance(ctx context.Context, contractID string) (services.ContractBalance, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return services.ContractBalance{}, ErrInvalidContractID
	}

	stamp := u.cache.Stamp()
	c, err := u.contract(ctx, u.store, contractID)
	if err != nil {
		return services.ContractBalance{}, err
	}
	_, b, err := u.balance(ctx, u.store, c)
	if err != nil {
		return services.ContractBalance{}, err
	}
	u.cache.Put(contractID, stamp, b)
	return b, nil
}
