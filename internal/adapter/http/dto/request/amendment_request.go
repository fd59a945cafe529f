package request

import (
	"gestao_contratos/internal/usecase"

	"github.com/shopspring/decimal"
)

// AmendmentRequest is the amendment (aditivo) form.
//
// tipo "periodo" uses nova_data_termino. tipo "valor" uses percentuais_por_item when
// present, otherwise percentual_itens for every item of the contract.
type AmendmentRequest struct {
	ContratoID         string                     `json:"contrato_id" binding:"required"`
	Tipo               string                     `json:"tipo" binding:"required"`
	NovaDataTermino    string                     `json:"nova_data_termino"`
	PercentualItens    decimal.Decimal            `json:"percentual_itens"`
	PercentuaisPorItem map[string]decimal.Decimal `json:"percentuais_por_item"`
}

func (r AmendmentRequest) ToInput(createdBy string) usecase.AmendmentInput {
	return usecase.AmendmentInput{
		ContractID:         r.ContratoID,
		Type:               r.Tipo,
		NewEndDate:         r.NovaDataTermino,
		Percentage:         r.PercentualItens,
		PerItemPercentages: r.PercentuaisPorItem,
		CreatedBy:          createdBy,
	}
}
