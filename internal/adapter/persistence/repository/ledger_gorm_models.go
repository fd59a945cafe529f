package repository

import (
	"time"

	"gestao_contratos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type contractModel struct {
	ID             string          `gorm:"primaryKey;size:36"`
	Number         string          `gorm:"size:64;not null;index"`
	Suppliers      []string        `gorm:"serializer:json"`
	Funds          []string        `gorm:"serializer:json"`
	Object         string          `gorm:"type:text"`
	TotalValue     decimal.Decimal `gorm:"type:decimal(18,4)"`
	StartDate      time.Time
	EndDate        time.Time
	StatusOverride string `gorm:"size:32"`
	Version        int64  `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (contractModel) TableName() string { return "contracts" }

type itemModel struct {
	ID          string          `gorm:"primaryKey;size:36"`
	ContractID  string          `gorm:"size:36;not null;index"`
	Description string          `gorm:"type:text;not null"`
	Unit        string          `gorm:"size:32"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4)"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4)"`
	Funds       []string        `gorm:"serializer:json"`
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (itemModel) TableName() string { return "contract_items" }

type amendmentModel struct {
	ID                 string `gorm:"primaryKey;size:36"`
	ContractID         string `gorm:"size:36;not null;index"`
	Type               string `gorm:"size:16;not null"`
	NewEndDate         *time.Time
	Percentage         decimal.Decimal            `gorm:"type:decimal(9,4)"`
	ApplyToAllItems    bool
	PerItemPercentages map[string]decimal.Decimal `gorm:"serializer:json"`
	CreatedBy          string                     `gorm:"size:64"`
	CreatedAt          time.Time
}

func (amendmentModel) TableName() string { return "contract_amendments" }

type orderRequestModel struct {
	ID             string                   `gorm:"primaryKey;size:36"`
	ContractID     string                   `gorm:"size:36;not null;index"`
	RequesterID    string                   `gorm:"size:64;not null"`
	Fund           string                   `gorm:"size:128;not null"`
	Justification  string                   `gorm:"type:text;not null"`
	Items          []entities.RequestedItem `gorm:"serializer:json"`
	Status         string                   `gorm:"size:16;not null;index"`
	DecidedBy      string                   `gorm:"size:64"`
	DecidedAt      *time.Time
	DecisionReason string `gorm:"type:text"`
	OrderID        string `gorm:"size:36"`
	OrderNumber    string `gorm:"size:9"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (orderRequestModel) TableName() string { return "order_requests" }

type orderModel struct {
	ID         string `gorm:"primaryKey;size:36"`
	ContractID string `gorm:"size:36;not null;index"`
	RequestID  string `gorm:"size:36;not null;uniqueIndex"`
	Year       int    `gorm:"not null;uniqueIndex:idx_orders_year_sequence,priority:1"`
	Sequence   int    `gorm:"not null;uniqueIndex:idx_orders_year_sequence,priority:2"`
	Fund       string `gorm:"size:128"`
	CreatedBy  string `gorm:"size:64"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (orderModel) TableName() string { return "orders" }

type consumptionRecordModel struct {
	ID         string          `gorm:"primaryKey;size:36"`
	OrderID    string          `gorm:"size:36;not null;index"`
	ContractID string          `gorm:"size:36;not null;index"`
	ItemID     string          `gorm:"size:36;not null;index"`
	Quantity   decimal.Decimal `gorm:"type:decimal(18,4)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (consumptionRecordModel) TableName() string { return "consumption_records" }

// orderSequenceModel holds the last order sequence handed out in a year.
type orderSequenceModel struct {
	Year int `gorm:"primaryKey;autoIncrement:false"`
	Last int `gorm:"not null"`
}

func (orderSequenceModel) TableName() string { return "order_sequences" }

// LedgerModels lists every table of the relational ledger, for AutoMigrate.
func LedgerModels() []any {
	return []any{
		&contractModel{},
		&itemModel{},
		&amendmentModel{},
		&orderRequestModel{},
		&orderModel{},
		&consumptionRecordModel{},
		&orderSequenceModel{},
	}
}

func toContractModel(c entities.Contract) contractModel {
	return contractModel{
		ID:             c.ID,
		Number:         c.Number,
		Suppliers:      c.Suppliers,
		Funds:          c.Funds,
		Object:         c.Object,
		TotalValue:     c.TotalValue,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		StatusOverride: string(c.StatusOverride),
		Version:        c.Version,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (m contractModel) toEntity() entities.Contract {
	return entities.Contract{
		ID:             m.ID,
		Number:         m.Number,
		Suppliers:      m.Suppliers,
		Funds:          m.Funds,
		Object:         m.Object,
		TotalValue:     m.TotalValue,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		StatusOverride: entities.ContractStatus(m.StatusOverride),
		Version:        m.Version,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toItemModel(it entities.Item) itemModel {
	return itemModel{
		ID:          it.ID,
		ContractID:  it.ContractID,
		Description: it.Description,
		Unit:        it.Unit,
		UnitPrice:   it.UnitPrice,
		Quantity:    it.Quantity,
		Funds:       it.Funds,
		Position:    it.Position,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func (m itemModel) toEntity() entities.Item {
	return entities.Item{
		ID:          m.ID,
		ContractID:  m.ContractID,
		Description: m.Description,
		Unit:        m.Unit,
		UnitPrice:   m.UnitPrice,
		Quantity:    m.Quantity,
		Funds:       m.Funds,
		Position:    m.Position,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toAmendmentModel(a entities.Amendment) amendmentModel {
	return amendmentModel{
		ID:                 a.ID,
		ContractID:         a.ContractID,
		Type:               string(a.Type),
		NewEndDate:         a.NewEndDate,
		Percentage:         a.Percentage,
		ApplyToAllItems:    a.ApplyToAllItems,
		PerItemPercentages: a.PerItemPercentages,
		CreatedBy:          a.CreatedBy,
		CreatedAt:          a.CreatedAt,
	}
}

func (m amendmentModel) toEntity() entities.Amendment {
	return entities.Amendment{
		ID:                 m.ID,
		ContractID:         m.ContractID,
		Type:               entities.AmendmentType(m.Type),
		NewEndDate:         m.NewEndDate,
		Percentage:         m.Percentage,
		ApplyToAllItems:    m.ApplyToAllItems,
		PerItemPercentages: m.PerItemPercentages,
		CreatedBy:          m.CreatedBy,
		CreatedAt:          m.CreatedAt,
	}
}

func toOrderRequestModel(r entities.OrderRequest) orderRequestModel {
	return orderRequestModel{
		ID:             r.ID,
		ContractID:     r.ContractID,
		RequesterID:    r.RequesterID,
		Fund:           r.Fund,
		Justification:  r.Justification,
		Items:          r.Items,
		Status:         string(r.Status),
		DecidedBy:      r.DecidedBy,
		DecidedAt:      r.DecidedAt,
		DecisionReason: r.DecisionReason,
		OrderID:        r.OrderID,
		OrderNumber:    r.OrderNumber,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (m orderRequestModel) toEntity() entities.OrderRequest {
	return entities.OrderRequest{
		ID:             m.ID,
		ContractID:     m.ContractID,
		RequesterID:    m.RequesterID,
		Fund:           m.Fund,
		Justification:  m.Justification,
		Items:          m.Items,
		Status:         entities.OrderRequestStatus(m.Status),
		DecidedBy:      m.DecidedBy,
		DecidedAt:      m.DecidedAt,
		DecisionReason: m.DecisionReason,
		OrderID:        m.OrderID,
		OrderNumber:    m.OrderNumber,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toOrderModel(o entities.Order) orderModel {
	return orderModel{
		ID:         o.ID,
		ContractID: o.ContractID,
		RequestID:  o.RequestID,
		Year:       o.Number.Year,
		Sequence:   o.Number.Sequence,
		Fund:       o.Fund,
		CreatedBy:  o.CreatedBy,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func (m orderModel) toEntity() entities.Order {
	return entities.Order{
		ID:         m.ID,
		ContractID: m.ContractID,
		RequestID:  m.RequestID,
		Number:     entities.OrderNumber{Sequence: m.Sequence, Year: m.Year},
		Fund:       m.Fund,
		CreatedBy:  m.CreatedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toConsumptionRecordModel(r entities.ConsumptionRecord) consumptionRecordModel {
	return consumptionRecordModel{
		ID:         r.ID,
		OrderID:    r.OrderID,
		ContractID: r.ContractID,
		ItemID:     r.ItemID,
		Quantity:   r.Quantity,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (m consumptionRecordModel) toEntity() entities.ConsumptionRecord {
	return entities.ConsumptionRecord{
		ID:         m.ID,
		OrderID:    m.OrderID,
		ContractID: m.ContractID,
		ItemID:     m.ItemID,
		Quantity:   m.Quantity,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
