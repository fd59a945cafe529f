package repository

import (
	"context"
	"errors"
	"time"

	"gestao_contratos/internal/domain/entities"
	"gestao_contratos/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerGormRepository persists the ledger in a relational database (postgres, sqlite).
//
// Concurrency:
//   - WithinContract locks the contract row (SELECT ... FOR UPDATE).
//   - NextOrderSequence locks the row of the year in order_sequences.
//   - orders has a unique index on (year, sequence) as the last line of defence.
//
// SQLite ignores FOR UPDATE; open it with a single connection so transactions serialize.
type LedgerGormRepository struct {
	gormLedgerReader
}

var _ interfaces.ILedgerStore = (*LedgerGormRepository)(nil)

func NewLedgerGormRepository(db *gorm.DB) *LedgerGormRepository {
	return &LedgerGormRepository{gormLedgerReader{db: db}}
}

func (r *LedgerGormRepository) CreateContract(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toContractModel(c)
		if err := tx.Create(&m).Error; err != nil {
			return translateGormError(err)
		}
		if len(c.Items) == 0 {
			return nil
		}
		items := make([]itemModel, 0, len(c.Items))
		for _, it := range c.Items {
			items = append(items, toItemModel(it))
		}
		return translateGormError(tx.Create(&items).Error)
	})
	if err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *LedgerGormRepository) WithinContract(ctx context.Context, contractID string, fn func(tx interfaces.ILedgerTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		tx := &gormLedgerTx{gormLedgerReader: gormLedgerReader{db: db}, contractID: contractID}

		var locked contractModel
		err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", contractID).Take(&locked).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// fn reports the missing contract through its own reads
		case err != nil:
			return err
		default:
			tx.version = locked.Version
		}

		if err := fn(tx); err != nil {
			return err
		}
		if !tx.dirty || tx.version == 0 {
			return nil
		}
		res := db.Model(&contractModel{}).
			Where("id = ? AND version = ?", contractID, tx.version).
			Updates(map[string]any{"version": tx.version + 1, "updated_at": time.Now().UTC()})
		if res.Error != nil {
			return translateGormError(res.Error)
		}
		if res.RowsAffected == 0 {
			return interfaces.ErrConflict
		}
		return nil
	})
}

type gormLedgerReader struct {
	db *gorm.DB
}

func (r gormLedgerReader) GetContract(ctx context.Context, id string) (entities.Contract, error) {
	var m contractModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		return entities.Contract{}, notFoundAsZero(err)
	}
	return m.toEntity(), nil
}

func (r gormLedgerReader) ListContracts(ctx context.Context) ([]entities.Contract, error) {
	var rows []contractModel
	if err := r.db.WithContext(ctx).Order("number, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Contract, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r gormLedgerReader) ListItems(ctx context.Context, contractID string) ([]entities.Item, error) {
	var rows []itemModel
	if err := r.db.WithContext(ctx).Where("contract_id = ?", contractID).Order("position, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Item, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r gormLedgerReader) GetItem(ctx context.Context, contractID, itemID string) (entities.Item, error) {
	var m itemModel
	if err := r.db.WithContext(ctx).Where("contract_id = ? AND id = ?", contractID, itemID).Take(&m).Error; err != nil {
		return entities.Item{}, notFoundAsZero(err)
	}
	return m.toEntity(), nil
}

func (r gormLedgerReader) ListAmendments(ctx context.Context, contractID string) ([]entities.Amendment, error) {
	var rows []amendmentModel
	if err := r.db.WithContext(ctx).Where("contract_id = ?", contractID).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Amendment, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r gormLedgerReader) GetOrderRequest(ctx context.Context, id string) (entities.OrderRequest, error) {
	var m orderRequestModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		return entities.OrderRequest{}, notFoundAsZero(err)
	}
	return m.toEntity(), nil
}

func (r gormLedgerReader) ListOrderRequests(ctx context.Context, contractID string) ([]entities.OrderRequest, error) {
	var rows []orderRequestModel
	if err := r.db.WithContext(ctx).Where("contract_id = ?", contractID).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.OrderRequest, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r gormLedgerReader) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	var m orderModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		return entities.Order{}, notFoundAsZero(err)
	}
	return m.toEntity(), nil
}

func (r gormLedgerReader) GetOrderByNumber(ctx context.Context, number entities.OrderNumber) (entities.Order, error) {
	var m orderModel
	err := r.db.WithContext(ctx).Where("year = ? AND sequence = ?", number.Year, number.Sequence).Take(&m).Error
	if err != nil {
		return entities.Order{}, notFoundAsZero(err)
	}
	return m.toEntity(), nil
}

func (r gormLedgerReader) ListOrdersForContract(ctx context.Context, contractID string) ([]entities.Order, error) {
	var rows []orderModel
	if err := r.db.WithContext(ctx).Where("contract_id = ?", contractID).Order("year, sequence").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r gormLedgerReader) ListConsumptionRecordsByOrder(ctx context.Context, orderID string) ([]entities.ConsumptionRecord, error) {
	return r.listRecords(ctx, "order_id = ?", orderID)
}

func (r gormLedgerReader) ListConsumptionRecordsByItem(ctx context.Context, itemID string) ([]entities.ConsumptionRecord, error) {
	return r.listRecords(ctx, "item_id = ?", itemID)
}

func (r gormLedgerReader) ListConsumptionRecordsByContract(ctx context.Context, contractID string) ([]entities.ConsumptionRecord, error) {
	return r.listRecords(ctx, "contract_id = ?", contractID)
}

func (r gormLedgerReader) listRecords(ctx context.Context, where string, arg string) ([]entities.ConsumptionRecord, error) {
	var rows []consumptionRecordModel
	if err := r.db.WithContext(ctx).Where(where, arg).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.ConsumptionRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

// gormLedgerTx runs on the *gorm.DB of an open transaction.
type gormLedgerTx struct {
	gormLedgerReader
	contractID string
	version    int64
	dirty      bool
}

var _ interfaces.ILedgerTx = (*gormLedgerTx)(nil)

func (t *gormLedgerTx) exec(ctx context.Context, fn func(db *gorm.DB) error) error {
	if err := fn(t.db.WithContext(ctx)); err != nil {
		return translateGormError(err)
	}
	t.dirty = true
	return nil
}

func (t *gormLedgerTx) UpdateContractEndDate(ctx context.Context, contractID string, end time.Time) error {
	return t.exec(ctx, func(db *gorm.DB) error {
		return db.Model(&contractModel{}).Where("id = ?", contractID).
			Updates(map[string]any{"end_date": end, "updated_at": time.Now().UTC()}).Error
	})
}

func (t *gormLedgerTx) InsertItem(ctx context.Context, item entities.Item) error {
	m := toItemModel(item)
	return t.exec(ctx, func(db *gorm.DB) error { return db.Create(&m).Error })
}

func (t *gormLedgerTx) DeleteItem(ctx context.Context, contractID, itemID string) error {
	return t.exec(ctx, func(db *gorm.DB) error {
		return db.Where("contract_id = ? AND id = ?", contractID, itemID).Delete(&itemModel{}).Error
	})
}

func (t *gormLedgerTx) UpdateItemQuantity(ctx context.Context, contractID, itemID string, quantity decimal.Decimal) error {
	return t.exec(ctx, func(db *gorm.DB) error {
		return db.Model(&itemModel{}).Where("contract_id = ? AND id = ?", contractID, itemID).
			Updates(map[string]any{"quantity": quantity, "updated_at": time.Now().UTC()}).Error
	})
}

func (t *gormLedgerTx) InsertAmendment(ctx context.Context, a entities.Amendment) error {
	m := toAmendmentModel(a)
	return t.exec(ctx, func(db *gorm.DB) error { return db.Create(&m).Error })
}

func (t *gormLedgerTx) InsertOrderRequest(ctx context.Context, r entities.OrderRequest) error {
	m := toOrderRequestModel(r)
	return t.exec(ctx, func(db *gorm.DB) error { return db.Create(&m).Error })
}

// UpdateOrderRequestStatus only moves a request that is still pending.
func (t *gormLedgerTx) UpdateOrderRequestStatus(ctx context.Context, r entities.OrderRequest) error {
	return t.exec(ctx, func(db *gorm.DB) error {
		res := db.Model(&orderRequestModel{}).
			Where("id = ? AND status = ?", r.ID, string(entities.OrderRequestStatusPendente)).
			Updates(map[string]any{
				"status":          string(r.Status),
				"decided_by":      r.DecidedBy,
				"decided_at":      r.DecidedAt,
				"decision_reason": r.DecisionReason,
				"order_id":        r.OrderID,
				"order_number":    r.OrderNumber,
				"updated_at":      r.UpdatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return interfaces.ErrConflict
		}
		return nil
	})
}

func (t *gormLedgerTx) NextOrderSequence(ctx context.Context, year int) (int, error) {
	db := t.db.WithContext(ctx)

	var seq orderSequenceModel
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("year = ?", year).Take(&seq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seq = orderSequenceModel{Year: year, Last: 1}
		if err := db.Create(&seq).Error; err != nil {
			return 0, translateGormError(err)
		}
		t.dirty = true
		return 1, nil
	}
	if err != nil {
		return 0, err
	}

	next := seq.Last + 1
	res := db.Model(&orderSequenceModel{}).Where("year = ? AND last = ?", year, seq.Last).Update("last", next)
	if res.Error != nil {
		return 0, translateGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, interfaces.ErrConflict
	}
	t.dirty = true
	return next, nil
}

func (t *gormLedgerTx) InsertOrder(ctx context.Context, o entities.Order) error {
	m := toOrderModel(o)
	return t.exec(ctx, func(db *gorm.DB) error { return db.Create(&m).Error })
}

func (t *gormLedgerTx) TouchOrder(ctx context.Context, o entities.Order) error {
	return t.exec(ctx, func(db *gorm.DB) error {
		return db.Model(&orderModel{}).Where("id = ?", o.ID).Update("updated_at", o.UpdatedAt).Error
	})
}

func (t *gormLedgerTx) InsertConsumptionRecords(ctx context.Context, records []entities.ConsumptionRecord) error {
	if len(records) == 0 {
		return nil
	}
	rows := make([]consumptionRecordModel, 0, len(records))
	for _, r := range records {
		rows = append(rows, toConsumptionRecordModel(r))
	}
	return t.exec(ctx, func(db *gorm.DB) error { return db.Create(&rows).Error })
}

func (t *gormLedgerTx) UpdateConsumptionRecord(ctx context.Context, r entities.ConsumptionRecord) error {
	return t.exec(ctx, func(db *gorm.DB) error {
		return db.Model(&consumptionRecordModel{}).Where("id = ? AND order_id = ?", r.ID, r.OrderID).
			Updates(map[string]any{"quantity": r.Quantity, "updated_at": r.UpdatedAt}).Error
	})
}

func (t *gormLedgerTx) DeleteConsumptionRecords(ctx context.Context, orderID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return t.exec(ctx, func(db *gorm.DB) error {
		return db.Where("order_id = ? AND id IN ?", orderID, ids).Delete(&consumptionRecordModel{}).Error
	})
}

func notFoundAsZero(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// translateGormError needs gorm.Config{TranslateError: true} to see duplicated keys.
func translateGormError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return interfaces.ErrConflict
	}
	return err
}
