package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"gestao_contratos/internal/domain/entities"
	"gestao_contratos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemInput describes a contracted line to be created.
type ItemInput struct {
	Description string
	Unit        string
	UnitPrice   decimal.Decimal
	Quantity    decimal.Decimal
	Funds       []string
}

// CreateContractInput describes a new contract. TotalValue defaults to the sum of item values.
type CreateContractInput struct {
	Number          string
	Suppliers       []string
	Funds           []string
	Object          string
	TotalValue      decimal.Decimal
	StartDate       time.Time
	EndDate         time.Time
	PendingApproval bool
	Items           []ItemInput
}

// IContractUseCase is the contract administration needed around the ledger.
type IContractUseCase interface {
	CreateContract(ctx context.Context, in CreateContractInput) (entities.Contract, error)
	GetContract(ctx context.Context, id string) (entities.Contract, error)
	ListContracts(ctx context.Context) ([]entities.Contract, error)
	AddItem(ctx context.Context, contractID string, in ItemInput) (entities.Item, error)
	DeleteItem(ctx context.Context, contractID, itemID string) error
	RefreshStatuses(ctx context.Context) (map[entities.ContractStatus]int, error)
}

type ContractUseCase struct {
	ledger
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(store interfaces.ILedgerStore, opts Options) *ContractUseCase {
	return &ContractUseCase{ledger: newLedger(store, opts)}
}

func (u *ContractUseCase) CreateContract(ctx context.Context, in CreateContractInput) (entities.Contract, error) {
	c, err := u.buildContract(in)
	if err != nil {
		return entities.Contract{}, err
	}

	created, err := u.store.CreateContract(ctx, c)
	if err != nil {
		log.Printf("[contract][usecase] create failed number=%s err=%v", c.Number, err)
		return entities.Contract{}, err
	}
	created.Status = created.StatusAt(u.now(), u.opts.ExpiringWindow)
	log.Printf("[contract][usecase] created contract_id=%s number=%s items=%d", created.ID, created.Number, len(created.Items))
	return created, nil
}

func (u *ContractUseCase) buildContract(in CreateContractInput) (entities.Contract, error) {
	number := strings.TrimSpace(in.Number)
	if number == "" {
		return entities.Contract{}, ErrContractNumberRequired
	}
	suppliers := cleanList(in.Suppliers)
	if len(suppliers) == 0 {
		return entities.Contract{}, ErrSupplierRequired
	}
	funds := cleanList(in.Funds)
	if len(funds) == 0 {
		return entities.Contract{}, ErrContractFundRequired
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return entities.Contract{}, ErrInvalidDate
	}
	if in.StartDate.After(in.EndDate) {
		return entities.Contract{}, ErrInvalidPeriod
	}

	now := u.now()
	c := entities.Contract{
		ID:         uuid.NewString(),
		Number:     number,
		Suppliers:  suppliers,
		Funds:      funds,
		Object:     strings.TrimSpace(in.Object),
		TotalValue: in.TotalValue,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if in.PendingApproval {
		c.StatusOverride = entities.ContractStatusPendenteAprovacao
	}

	total := decimal.Zero
	for i, itIn := range in.Items {
		it, err := newItem(c.ID, i+1, itIn, now)
		if err != nil {
			return entities.Contract{}, err
		}
		total = total.Add(it.Value())
		c.Items = append(c.Items, it)
	}
	if c.TotalValue.IsZero() {
		c.TotalValue = total
	}
	return c, nil
}

func newItem(contractID string, position int, in ItemInput, now time.Time) (entities.Item, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return entities.Item{}, ErrItemDescriptionMissing
	}
	if in.UnitPrice.IsNegative() {
		return entities.Item{}, ErrInvalidUnitPrice
	}
	if !in.Quantity.IsPositive() {
		return entities.Item{}, entities.ErrInvalidQuantity
	}
	return entities.Item{
		ID:          uuid.NewString(),
		ContractID:  contractID,
		Description: desc,
		Unit:        strings.TrimSpace(in.Unit),
		UnitPrice:   in.UnitPrice,
		Quantity:    in.Quantity,
		Funds:       cleanList(in.Funds),
		Position:    position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (u *ContractUseCase) GetContract(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	c, err := u.contract(ctx, u.store, id)
	if err != nil {
		return entities.Contract{}, err
	}
	items, err := u.store.ListItems(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	c.Items = items
	return c, nil
}

func (u *ContractUseCase) ListContracts(ctx context.Context) ([]entities.Contract, error) {
	contracts, err := u.store.ListContracts(ctx)
	if err != nil {
		return nil, err
	}
	now := u.now()
	for i := range contracts {
		contracts[i].Status = contracts[i].StatusAt(now, u.opts.ExpiringWindow)
	}
	return contracts, nil
}

func (u *ContractUseCase) AddItem(ctx context.Context, contractID string, in ItemInput) (entities.Item, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.Item{}, ErrInvalidContractID
	}

	var created entities.Item
	err := u.within(ctx, "contract", contractID, func(tx interfaces.ILedgerTx) error {
		c, err := u.contract(ctx, tx, contractID)
		if err != nil {
			return err
		}
		if !u.acceptsOrders(c) {
			return ErrContractNotEditable
		}
		items, err := tx.ListItems(ctx, contractID)
		if err != nil {
			return err
		}
		position := 1
		for _, it := range items {
			if it.Position >= position {
				position = it.Position + 1
			}
		}
		it, err := newItem(contractID, position, in, u.now())
		if err != nil {
			return err
		}
		if err := tx.InsertItem(ctx, it); err != nil {
			return err
		}
		created = it
		return nil
	})
	if err != nil {
		return entities.Item{}, err
	}
	log.Printf("[contract][usecase] item added contract_id=%s item_id=%s", contractID, created.ID)
	return created, nil
}

// DeleteItem refuses to remove an item that any order has consumed.
func (u *ContractUseCase) DeleteItem(ctx context.Context, contractID, itemID string) error {
	contractID = strings.TrimSpace(contractID)
	itemID = strings.TrimSpace(itemID)
	if contractID == "" {
		return ErrInvalidContractID
	}
	if itemID == "" {
		return ErrInvalidItemID
	}

	err := u.within(ctx, "contract", contractID, func(tx interfaces.ILedgerTx) error {
		c, err := u.contract(ctx, tx, contractID)
		if err != nil {
			return err
		}
		if !u.acceptsOrders(c) {
			return ErrContractNotEditable
		}
		it, err := tx.GetItem(ctx, contractID, itemID)
		if err != nil {
			return err
		}
		if it.ID == "" {
			return ErrItemNotFound
		}
		records, err := tx.ListConsumptionRecordsByItem(ctx, itemID)
		if err != nil {
			return err
		}
		consumed := decimal.Zero
		for _, r := range records {
			consumed = consumed.Add(r.Quantity)
		}
		if consumed.IsPositive() {
			return ErrItemHasConsumption
		}
		return tx.DeleteItem(ctx, contractID, itemID)
	})
	if err != nil {
		return err
	}
	log.Printf("[contract][usecase] item deleted contract_id=%s item_id=%s", contractID, itemID)
	return nil
}

// RefreshStatuses counts contracts per derived status for the current day.
func (u *ContractUseCase) RefreshStatuses(ctx context.Context) (map[entities.ContractStatus]int, error) {
	contracts, err := u.ListContracts(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[entities.ContractStatus]int{
		entities.ContractStatusAtivo:             0,
		entities.ContractStatusVencendo:          0,
		entities.ContractStatusVencido:           0,
		entities.ContractStatusPendenteAprovacao: 0,
	}
	for _, c := range contracts {
		counts[c.Status]++
	}
	return counts, nil
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
