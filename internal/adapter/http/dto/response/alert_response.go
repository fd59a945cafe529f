package response

import (
	"gestao_contratos/internal/domain/services"

	"github.com/shopspring/decimal"
)

type AlertContractResponse struct {
	ID           string   `json:"id"`
	Numero       string   `json:"numero"`
	Fornecedores []string `json:"fornecedores"`
}

type AlertResponse struct {
	ItemID              string                `json:"item_id"`
	Descricao           string                `json:"descricao"`
	Quantidade          decimal.Decimal       `json:"quantidade"`
	QuantidadeConsumida decimal.Decimal       `json:"quantidade_consumida"`
	PercentualConsumido decimal.Decimal       `json:"percentual_consumido"`
	Contrato            AlertContractResponse `json:"contrato"`
}

// FromAlerts keeps the order of alerts; the percentage is not rounded so that the
// threshold comparison a client makes matches the server's.
func FromAlerts(alerts []services.Alert) []AlertResponse {
	out := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, AlertResponse{
			ItemID:              a.Item.ItemID,
			Descricao:           a.Item.Description,
			Quantidade:          a.Item.OriginalQty,
			QuantidadeConsumida: a.Item.ConsumedQty,
			PercentualConsumido: a.Item.PercentConsumed,
			Contrato: AlertContractResponse{
				ID:           a.Contract.ID,
				Numero:       a.Contract.Number,
				Fornecedores: a.Contract.Suppliers,
			},
		})
	}
	return out
}
