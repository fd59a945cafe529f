package repository

import (
	"fmt"
	"time"

	"gestao_contratos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Single table layout. Everything of a contract lives in its partition so one Query
// loads the ledger; REF rows resolve ids that arrive without their contract.
//
//	pk                        sk                             row
//	CONTRACT#<id>             META                           contractRow
//	CONTRACT#<id>             ITEM#<item>                    itemRow
//	CONTRACT#<id>             AMENDMENT#<created>#<id>       amendmentRow
//	CONTRACT#<id>             REQUEST#<request>              requestRow
//	CONTRACT#<id>             ORDER#<order>                  orderRow
//	CONTRACT#<id>             RECORD#<order>#<record>        recordRow
//	REF#ITEM|REQUEST|ORDER#<id>  REF                         refRow
//	REF#ORDERNO#<year>#<seq>  REF                            refRow (unique order number)
//	SEQUENCE#<year>           COUNTER                        sequenceRow
const (
	skMeta    = "META"
	skRef     = "REF"
	skCounter = "COUNTER"

	prefixItem      = "ITEM#"
	prefixAmendment = "AMENDMENT#"
	prefixRequest   = "REQUEST#"
	prefixOrder     = "ORDER#"
	prefixRecord    = "RECORD#"
)

func contractPK(id string) string { return "CONTRACT#" + id }

func itemSK(id string) string { return prefixItem + id }

func amendmentSK(a entities.Amendment) string {
	return prefixAmendment + formatTime(a.CreatedAt) + "#" + a.ID
}

func requestSK(id string) string { return prefixRequest + id }

func orderSK(id string) string { return prefixOrder + id }

func recordSK(orderID, id string) string { return prefixRecord + orderID + "#" + id }

func itemRefPK(id string) string { return "REF#ITEM#" + id }

func requestRefPK(id string) string { return "REF#REQUEST#" + id }

func orderRefPK(id string) string { return "REF#ORDER#" + id }

func orderNumberRefPK(n entities.OrderNumber) string {
	return fmt.Sprintf("REF#ORDERNO#%04d#%04d", n.Year, n.Sequence)
}

func sequencePK(year int) string { return fmt.Sprintf("SEQUENCE#%04d", year) }

type contractRow struct {
	PK             string   `dynamodbav:"pk"`
	SK             string   `dynamodbav:"sk"`
	ID             string   `dynamodbav:"id"`
	Number         string   `dynamodbav:"number"`
	Suppliers      []string `dynamodbav:"suppliers"`
	Funds          []string `dynamodbav:"funds"`
	Object         string   `dynamodbav:"object"`
	TotalValue     string   `dynamodbav:"total_value"`
	StartDate      string   `dynamodbav:"start_date"`
	EndDate        string   `dynamodbav:"end_date"`
	StatusOverride string   `dynamodbav:"status_override,omitempty"`
	Version        int64    `dynamodbav:"version"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

type itemRow struct {
	PK          string   `dynamodbav:"pk"`
	SK          string   `dynamodbav:"sk"`
	ID          string   `dynamodbav:"id"`
	ContractID  string   `dynamodbav:"contract_id"`
	Description string   `dynamodbav:"description"`
	Unit        string   `dynamodbav:"unit"`
	UnitPrice   string   `dynamodbav:"unit_price"`
	Quantity    string   `dynamodbav:"quantity"`
	Funds       []string `dynamodbav:"funds,omitempty"`
	Position    int      `dynamodbav:"position"`
	CreatedAt   string   `dynamodbav:"created_at"`
	UpdatedAt   string   `dynamodbav:"updated_at"`
}

type amendmentRow struct {
	PK                 string            `dynamodbav:"pk"`
	SK                 string            `dynamodbav:"sk"`
	ID                 string            `dynamodbav:"id"`
	ContractID         string            `dynamodbav:"contract_id"`
	Type               string            `dynamodbav:"type"`
	NewEndDate         string            `dynamodbav:"new_end_date,omitempty"`
	Percentage         string            `dynamodbav:"percentage"`
	ApplyToAllItems    bool              `dynamodbav:"apply_to_all_items"`
	PerItemPercentages map[string]string `dynamodbav:"per_item_percentages,omitempty"`
	CreatedBy          string            `dynamodbav:"created_by"`
	CreatedAt          string            `dynamodbav:"created_at"`
}

type requestedItemRow struct {
	ItemID   string `dynamodbav:"item_id"`
	Quantity string `dynamodbav:"quantity"`
}

type requestRow struct {
	PK             string             `dynamodbav:"pk"`
	SK             string             `dynamodbav:"sk"`
	ID             string             `dynamodbav:"id"`
	ContractID     string             `dynamodbav:"contract_id"`
	RequesterID    string             `dynamodbav:"requester_id"`
	Fund           string             `dynamodbav:"fund"`
	Justification  string             `dynamodbav:"justification"`
	Items          []requestedItemRow `dynamodbav:"items"`
	Status         string             `dynamodbav:"status"`
	DecidedBy      string             `dynamodbav:"decided_by,omitempty"`
	DecidedAt      string             `dynamodbav:"decided_at,omitempty"`
	DecisionReason string             `dynamodbav:"decision_reason,omitempty"`
	OrderID        string             `dynamodbav:"order_id,omitempty"`
	OrderNumber    string             `dynamodbav:"order_number,omitempty"`
	CreatedAt      string             `dynamodbav:"created_at"`
	UpdatedAt      string             `dynamodbav:"updated_at"`
}

type orderRow struct {
	PK         string `dynamodbav:"pk"`
	SK         string `dynamodbav:"sk"`
	ID         string `dynamodbav:"id"`
	ContractID string `dynamodbav:"contract_id"`
	RequestID  string `dynamodbav:"request_id"`
	Year       int    `dynamodbav:"year"`
	Sequence   int    `dynamodbav:"sequence"`
	Fund       string `dynamodbav:"fund"`
	CreatedBy  string `dynamodbav:"created_by"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

type recordRow struct {
	PK         string `dynamodbav:"pk"`
	SK         string `dynamodbav:"sk"`
	ID         string `dynamodbav:"id"`
	OrderID    string `dynamodbav:"order_id"`
	ContractID string `dynamodbav:"contract_id"`
	ItemID     string `dynamodbav:"item_id"`
	Quantity   string `dynamodbav:"quantity"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

type refRow struct {
	PK         string `dynamodbav:"pk"`
	SK         string `dynamodbav:"sk"`
	ContractID string `dynamodbav:"contract_id"`
	TargetID   string `dynamodbav:"target_id"`
}

type sequenceRow struct {
	PK   string `dynamodbav:"pk"`
	SK   string `dynamodbav:"sk"`
	Last int    `dynamodbav:"last"`
}

func toContractRow(c entities.Contract) contractRow {
	return contractRow{
		PK:             contractPK(c.ID),
		SK:             skMeta,
		ID:             c.ID,
		Number:         c.Number,
		Suppliers:      c.Suppliers,
		Funds:          c.Funds,
		Object:         c.Object,
		TotalValue:     c.TotalValue.String(),
		StartDate:      formatTime(c.StartDate),
		EndDate:        formatTime(c.EndDate),
		StatusOverride: string(c.StatusOverride),
		Version:        c.Version,
		CreatedAt:      formatTime(c.CreatedAt),
		UpdatedAt:      formatTime(c.UpdatedAt),
	}
}

func fromContractRow(r contractRow) entities.Contract {
	return entities.Contract{
		ID:             r.ID,
		Number:         r.Number,
		Suppliers:      r.Suppliers,
		Funds:          r.Funds,
		Object:         r.Object,
		TotalValue:     parseDecimal(r.TotalValue),
		StartDate:      parseTime(r.StartDate),
		EndDate:        parseTime(r.EndDate),
		StatusOverride: entities.ContractStatus(r.StatusOverride),
		Version:        r.Version,
		CreatedAt:      parseTime(r.CreatedAt),
		UpdatedAt:      parseTime(r.UpdatedAt),
	}
}

func toItemRow(it entities.Item) itemRow {
	return itemRow{
		PK:          contractPK(it.ContractID),
		SK:          itemSK(it.ID),
		ID:          it.ID,
		ContractID:  it.ContractID,
		Description: it.Description,
		Unit:        it.Unit,
		UnitPrice:   it.UnitPrice.String(),
		Quantity:    it.Quantity.String(),
		Funds:       it.Funds,
		Position:    it.Position,
		CreatedAt:   formatTime(it.CreatedAt),
		UpdatedAt:   formatTime(it.UpdatedAt),
	}
}

func fromItemRow(r itemRow) entities.Item {
	return entities.Item{
		ID:          r.ID,
		ContractID:  r.ContractID,
		Description: r.Description,
		Unit:        r.Unit,
		UnitPrice:   parseDecimal(r.UnitPrice),
		Quantity:    parseDecimal(r.Quantity),
		Funds:       r.Funds,
		Position:    r.Position,
		CreatedAt:   parseTime(r.CreatedAt),
		UpdatedAt:   parseTime(r.UpdatedAt),
	}
}

func toAmendmentRow(a entities.Amendment) amendmentRow {
	row := amendmentRow{
		PK:              contractPK(a.ContractID),
		SK:              amendmentSK(a),
		ID:              a.ID,
		ContractID:      a.ContractID,
		Type:            string(a.Type),
		Percentage:      a.Percentage.String(),
		ApplyToAllItems: a.ApplyToAllItems,
		CreatedBy:       a.CreatedBy,
		CreatedAt:       formatTime(a.CreatedAt),
	}
	if a.NewEndDate != nil {
		row.NewEndDate = formatTime(*a.NewEndDate)
	}
	if len(a.PerItemPercentages) > 0 {
		row.PerItemPercentages = make(map[string]string, len(a.PerItemPercentages))
		for itemID, p := range a.PerItemPercentages {
			row.PerItemPercentages[itemID] = p.String()
		}
	}
	return row
}

func fromAmendmentRow(r amendmentRow) entities.Amendment {
	a := entities.Amendment{
		ID:              r.ID,
		ContractID:      r.ContractID,
		Type:            entities.AmendmentType(r.Type),
		Percentage:      parseDecimal(r.Percentage),
		ApplyToAllItems: r.ApplyToAllItems,
		CreatedBy:       r.CreatedBy,
		CreatedAt:       parseTime(r.CreatedAt),
	}
	if r.NewEndDate != "" {
		end := parseTime(r.NewEndDate)
		a.NewEndDate = &end
	}
	if len(r.PerItemPercentages) > 0 {
		a.PerItemPercentages = make(map[string]decimal.Decimal, len(r.PerItemPercentages))
		for itemID, p := range r.PerItemPercentages {
			a.PerItemPercentages[itemID] = parseDecimal(p)
		}
	}
	return a
}

func toRequestRow(r entities.OrderRequest) requestRow {
	row := requestRow{
		PK:             contractPK(r.ContractID),
		SK:             requestSK(r.ID),
		ID:             r.ID,
		ContractID:     r.ContractID,
		RequesterID:    r.RequesterID,
		Fund:           r.Fund,
		Justification:  r.Justification,
		Status:         string(r.Status),
		DecidedBy:      r.DecidedBy,
		DecisionReason: r.DecisionReason,
		OrderID:        r.OrderID,
		OrderNumber:    r.OrderNumber,
		CreatedAt:      formatTime(r.CreatedAt),
		UpdatedAt:      formatTime(r.UpdatedAt),
	}
	if r.DecidedAt != nil {
		row.DecidedAt = formatTime(*r.DecidedAt)
	}
	for _, it := range r.Items {
		row.Items = append(row.Items, requestedItemRow{ItemID: it.ItemID, Quantity: it.Quantity.String()})
	}
	return row
}

func fromRequestRow(r requestRow) entities.OrderRequest {
	out := entities.OrderRequest{
		ID:             r.ID,
		ContractID:     r.ContractID,
		RequesterID:    r.RequesterID,
		Fund:           r.Fund,
		Justification:  r.Justification,
		Status:         entities.OrderRequestStatus(r.Status),
		DecidedBy:      r.DecidedBy,
		DecisionReason: r.DecisionReason,
		OrderID:        r.OrderID,
		OrderNumber:    r.OrderNumber,
		CreatedAt:      parseTime(r.CreatedAt),
		UpdatedAt:      parseTime(r.UpdatedAt),
	}
	if r.DecidedAt != "" {
		at := parseTime(r.DecidedAt)
		out.DecidedAt = &at
	}
	for _, it := range r.Items {
		out.Items = append(out.Items, entities.RequestedItem{ItemID: it.ItemID, Quantity: parseDecimal(it.Quantity)})
	}
	return out
}

func toOrderRow(o entities.Order) orderRow {
	return orderRow{
		PK:         contractPK(o.ContractID),
		SK:         orderSK(o.ID),
		ID:         o.ID,
		ContractID: o.ContractID,
		RequestID:  o.RequestID,
		Year:       o.Number.Year,
		Sequence:   o.Number.Sequence,
		Fund:       o.Fund,
		CreatedBy:  o.CreatedBy,
		CreatedAt:  formatTime(o.CreatedAt),
		UpdatedAt:  formatTime(o.UpdatedAt),
	}
}

func fromOrderRow(r orderRow) entities.Order {
	return entities.Order{
		ID:         r.ID,
		ContractID: r.ContractID,
		RequestID:  r.RequestID,
		Number:     entities.OrderNumber{Sequence: r.Sequence, Year: r.Year},
		Fund:       r.Fund,
		CreatedBy:  r.CreatedBy,
		CreatedAt:  parseTime(r.CreatedAt),
		UpdatedAt:  parseTime(r.UpdatedAt),
	}
}

func toRecordRow(r entities.ConsumptionRecord) recordRow {
	return recordRow{
		PK:         contractPK(r.ContractID),
		SK:         recordSK(r.OrderID, r.ID),
		ID:         r.ID,
		OrderID:    r.OrderID,
		ContractID: r.ContractID,
		ItemID:     r.ItemID,
		Quantity:   r.Quantity.String(),
		CreatedAt:  formatTime(r.CreatedAt),
		UpdatedAt:  formatTime(r.UpdatedAt),
	}
}

func fromRecordRow(r recordRow) entities.ConsumptionRecord {
	return entities.ConsumptionRecord{
		ID:         r.ID,
		OrderID:    r.OrderID,
		ContractID: r.ContractID,
		ItemID:     r.ItemID,
		Quantity:   parseDecimal(r.Quantity),
		CreatedAt:  parseTime(r.CreatedAt),
		UpdatedAt:  parseTime(r.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
