package usecase

import (
	"sync"
	"time"

	"gestao_contratos/internal/domain/services"
)

// BalanceCache keeps computed contract balances for a TTL so alert scans do not reload
// every ledger on each call. A nil *BalanceCache is a valid, always-empty cache.
//
// Readers take a Stamp before loading a balance and hand it back to Put. A Put whose
// stamp predates an invalidation of that contract is dropped, so a read racing a
// ledger write never repopulates the cache with the old balance.
type BalanceCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	cache   map[string]*balanceEntry
	seq     uint64
	touched map[string]uint64
	resetAt uint64
}

type balanceEntry struct {
	balance   services.ContractBalance
	expiresAt time.Time
}

// NewBalanceCache returns nil when ttl is not positive, which disables caching.
func NewBalanceCache(ttl time.Duration) *BalanceCache {
	if ttl <= 0 {
		return nil
	}
	return &BalanceCache{
		ttl:     ttl,
		now:     time.Now,
		cache:   make(map[string]*balanceEntry),
		touched: make(map[string]uint64),
	}
}

func (c *BalanceCache) Get(contractID string) (services.ContractBalance, bool) {
	if c == nil {
		return services.ContractBalance{}, false
	}
	c.mu.RLock()
	entry, ok := c.cache[contractID]
	c.mu.RUnlock()

	if !ok || !c.now().Before(entry.expiresAt) {
		return services.ContractBalance{}, false
	}
	return entry.balance, true
}

// Stamp marks the start of a balance read.
func (c *BalanceCache) Stamp() uint64 {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.seq
}

// Put stores b unless the contract was invalidated after stamp was taken.
func (c *BalanceCache) Put(contractID string, stamp uint64, b services.ContractBalance) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.touched[contractID] > stamp || c.resetAt > stamp {
		return
	}
	c.cache[contractID] = &balanceEntry{balance: b, expiresAt: c.now().Add(c.ttl)}
}

// Invalidate drops the balance of one contract. Use it as Options.OnLedgerChange.
func (c *BalanceCache) Invalidate(contractID string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.seq++
	c.touched[contractID] = c.seq
	delete(c.cache, contractID)
	c.mu.Unlock()
}

func (c *BalanceCache) InvalidateAll() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.seq++
	c.resetAt = c.seq
	c.cache = make(map[string]*balanceEntry)
	c.touched = make(map[string]uint64)
	c.mu.Unlock()
}
