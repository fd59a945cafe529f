package request

import (
	"strings"
	"time"

	"gestao_contratos/internal/usecase"

	"github.com/shopspring/decimal"
)

// ItemRequest is a contracted line as sent by the contracts form.
type ItemRequest struct {
	Descricao     string          `json:"descricao" binding:"required"`
	Unidade       string          `json:"unidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	Secretarias   []string        `json:"secretarias"`
}

type ContractRequest struct {
	Numero            string          `json:"numero" binding:"required"`
	Fornecedores      []string        `json:"fornecedores" binding:"required,min=1"`
	Secretarias       []string        `json:"secretarias" binding:"required,min=1"`
	Objeto            string          `json:"objeto"`
	ValorTotal        decimal.Decimal `json:"valor_total"`
	DataInicio        string          `json:"data_inicio" binding:"required"`
	DataTermino       string          `json:"data_termino" binding:"required"`
	PendenteAprovacao bool            `json:"pendente_aprovacao"`
	Itens             []ItemRequest   `json:"itens" binding:"dive"`
}

func (r ItemRequest) ToInput() usecase.ItemInput {
	return usecase.ItemInput{
		Description: strings.TrimSpace(r.Descricao),
		Unit:        strings.TrimSpace(r.Unidade),
		UnitPrice:   r.ValorUnitario,
		Quantity:    r.Quantidade,
		Funds:       r.Secretarias,
	}
}

// ToInput parses the contract dates as calendar days in loc.
func (r ContractRequest) ToInput(loc *time.Location) (usecase.CreateContractInput, error) {
	start, err := usecase.ParseDate(r.DataInicio, loc)
	if err != nil {
		return usecase.CreateContractInput{}, err
	}
	end, err := usecase.ParseDate(r.DataTermino, loc)
	if err != nil {
		return usecase.CreateContractInput{}, err
	}
	in := usecase.CreateContractInput{
		Number:          r.Numero,
		Suppliers:       r.Fornecedores,
		Funds:           r.Secretarias,
		Object:          r.Objeto,
		TotalValue:      r.ValorTotal,
		StartDate:       start,
		EndDate:         end,
		PendingApproval: r.PendenteAprovacao,
	}
	for _, it := range r.Itens {
		in.Items = append(in.Items, it.ToInput())
	}
	return in, nil
}
