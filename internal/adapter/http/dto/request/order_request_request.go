package request

import (
	"gestao_contratos/internal/domain/services"
	"gestao_contratos/internal/usecase"

	"github.com/shopspring/decimal"
)

type RequestedItemRequest struct {
	ItemID     string          `json:"item_id" binding:"required"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

// OrderRequestRequest is the order request (solicitação) form. secretaria may be omitted
// when the requester has a single fund.
type OrderRequestRequest struct {
	ContratoID      string                 `json:"contrato_id" binding:"required"`
	Justificativa   string                 `json:"justificativa"`
	QuantidadeTotal decimal.Decimal        `json:"quantidade_total"`
	Secretaria      string                 `json:"secretaria"`
	Itens           []RequestedItemRequest `json:"itens" binding:"dive"`
}

type RefuseRequest struct {
	Motivo string `json:"motivo"`
}

// AdjustOrderRequest replaces the consumed items of an order.
type AdjustOrderRequest struct {
	Itens []RequestedItemRequest `json:"itens" binding:"dive"`
}

func (r OrderRequestRequest) ToInput(requester usecase.Requester) usecase.SubmitInput {
	return usecase.SubmitInput{
		ContractID:    r.ContratoID,
		Requester:     requester,
		Fund:          r.Secretaria,
		Justification: r.Justificativa,
		TotalQuantity: r.QuantidadeTotal,
		Items:         toEntries(r.Itens),
	}
}

func (r AdjustOrderRequest) Entries() []services.Entry {
	return toEntries(r.Itens)
}

func toEntries(items []RequestedItemRequest) []services.Entry {
	out := make([]services.Entry, 0, len(items))
	for _, it := range items {
		out = append(out, services.Entry{ItemID: it.ItemID, Quantity: it.Quantidade})
	}
	return out
}
