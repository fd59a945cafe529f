package response

import (
	"time"

	"gestao_contratos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type ItemResponse struct {
	ID            string          `json:"id"`
	Descricao     string          `json:"descricao"`
	Unidade       string          `json:"unidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	Secretarias   []string        `json:"secretarias,omitempty"`
	Posicao       int             `json:"posicao"`
}

type ContractResponse struct {
	ID           string          `json:"id"`
	Numero       string          `json:"numero"`
	Fornecedores []string        `json:"fornecedores"`
	Secretarias  []string        `json:"secretarias"`
	Objeto       string          `json:"objeto"`
	ValorTotal   decimal.Decimal `json:"valor_total"`
	DataInicio   string          `json:"data_inicio"`
	DataTermino  string          `json:"data_termino"`
	Status       string          `json:"status"`
	Itens        []ItemResponse  `json:"itens,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func FromItem(i entities.Item) ItemResponse {
	return ItemResponse{
		ID:            i.ID,
		Descricao:     i.Description,
		Unidade:       i.Unit,
		ValorUnitario: i.UnitPrice,
		Quantidade:    i.Quantity,
		Secretarias:   i.Funds,
		Posicao:       i.Position,
	}
}

func FromContract(c entities.Contract) ContractResponse {
	out := ContractResponse{
		ID:           c.ID,
		Numero:       c.Number,
		Fornecedores: c.Suppliers,
		Secretarias:  c.Funds,
		Objeto:       c.Object,
		ValorTotal:   c.TotalValue,
		DataInicio:   c.StartDate.Format(dateLayout),
		DataTermino:  c.EndDate.Format(dateLayout),
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	for _, it := range c.Items {
		out.Itens = append(out.Itens, FromItem(it))
	}
	return out
}

func FromContracts(contracts []entities.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, FromContract(c))
	}
	return out
}
