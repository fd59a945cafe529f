package response

import (
	"time"

	"gestao_contratos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type AmendmentResponse struct {
	ID                 string                     `json:"id"`
	ContratoID         string                     `json:"contrato_id"`
	Tipo               string                     `json:"tipo"`
	NovaDataTermino    string                     `json:"nova_data_termino,omitempty"`
	PercentualItens    *decimal.Decimal           `json:"percentual_itens,omitempty"`
	PercentuaisPorItem map[string]decimal.Decimal `json:"percentuais_por_item,omitempty"`
	CriadoPor          string                     `json:"criado_por,omitempty"`
	CreatedAt          time.Time                  `json:"created_at"`
}

func FromAmendment(a entities.Amendment) AmendmentResponse {
	out := AmendmentResponse{
		ID:                 a.ID,
		ContratoID:         a.ContractID,
		Tipo:               string(a.Type),
		PercentuaisPorItem: a.PerItemPercentages,
		CriadoPor:          a.CreatedBy,
		CreatedAt:          a.CreatedAt,
	}
	if a.NewEndDate != nil {
		out.NovaDataTermino = a.NewEndDate.Format(dateLayout)
	}
	if a.ApplyToAllItems {
		p := a.Percentage
		out.PercentualItens = &p
	}
	return out
}

func FromAmendments(amendments []entities.Amendment) []AmendmentResponse {
	out := make([]AmendmentResponse, 0, len(amendments))
	for _, a := range amendments {
		out = append(out, FromAmendment(a))
	}
	return out
}
