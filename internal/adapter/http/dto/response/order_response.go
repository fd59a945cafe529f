package response

import (
	"time"

	"gestao_contratos/internal/domain/entities"
	"gestao_contratos/internal/usecase"

	"github.com/shopspring/decimal"
)

type RequestedItemResponse struct {
	ItemID     string          `json:"item_id"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

type OrderRequestResponse struct {
	ID              string                  `json:"id"`
	ContratoID      string                  `json:"contrato_id"`
	SolicitanteID   string                  `json:"solicitante_id"`
	Secretaria      string                  `json:"secretaria"`
	Justificativa   string                  `json:"justificativa"`
	QuantidadeTotal decimal.Decimal         `json:"quantidade_total"`
	Itens           []RequestedItemResponse `json:"itens"`
	Status          string                  `json:"status"`
	DecididoPor     string                  `json:"decidido_por,omitempty"`
	DecididoEm      *time.Time              `json:"decidido_em,omitempty"`
	Motivo          string                  `json:"motivo,omitempty"`
	OrdemID         string                  `json:"ordem_id,omitempty"`
	NumeroOrdem     string                  `json:"numero_ordem,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

type ApprovalResponse struct {
	SolicitacaoID string `json:"solicitacao_id"`
	NumeroOrdem   string `json:"numero_ordem"`
}

type ConsumptionRecordResponse struct {
	ID         string          `json:"id"`
	ItemID     string          `json:"item_id"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

type OrderResponse struct {
	ID            string                      `json:"id"`
	Numero        string                      `json:"numero"`
	ContratoID    string                      `json:"contrato_id"`
	SolicitacaoID string                      `json:"solicitacao_id"`
	Secretaria    string                      `json:"secretaria"`
	CriadoPor     string                      `json:"criado_por"`
	Itens         []ConsumptionRecordResponse `json:"itens,omitempty"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

func FromOrderRequest(r entities.OrderRequest) OrderRequestResponse {
	out := OrderRequestResponse{
		ID:              r.ID,
		ContratoID:      r.ContractID,
		SolicitanteID:   r.RequesterID,
		Secretaria:      r.Fund,
		Justificativa:   r.Justification,
		QuantidadeTotal: r.TotalQuantity(),
		Itens:           make([]RequestedItemResponse, 0, len(r.Items)),
		Status:          string(r.Status),
		DecididoPor:     r.DecidedBy,
		DecididoEm:      r.DecidedAt,
		Motivo:          r.DecisionReason,
		OrdemID:         r.OrderID,
		NumeroOrdem:     r.OrderNumber,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	for _, it := range r.Items {
		out.Itens = append(out.Itens, RequestedItemResponse{ItemID: it.ItemID, Quantidade: it.Quantity})
	}
	return out
}

func FromOrderRequests(requests []entities.OrderRequest) []OrderRequestResponse {
	out := make([]OrderRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, FromOrderRequest(r))
	}
	return out
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		Numero:        o.Number.String(),
		ContratoID:    o.ContractID,
		SolicitacaoID: o.RequestID,
		Secretaria:    o.Fund,
		CriadoPor:     o.CreatedBy,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func FromOrderDetail(d usecase.OrderDetail) OrderResponse {
	out := FromOrder(d.Order)
	out.Itens = make([]ConsumptionRecordResponse, 0, len(d.Records))
	for _, r := range d.Records {
		out.Itens = append(out.Itens, ConsumptionRecordResponse{ID: r.ID, ItemID: r.ItemID, Quantidade: r.Quantity})
	}
	return out
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
