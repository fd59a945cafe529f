package handlers

import (
	"log"
	"net/http"
	"time"

	request "gestao_contratos/internal/adapter/http/dto/request"
	response "gestao_contratos/internal/adapter/http/dto/response"
	"gestao_contratos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ContractHandler serves contracts, their items and their balance.
type ContractHandler struct {
	contracts usecase.IContractUseCase
	balances  usecase.IBalanceUseCase
	loc       *time.Location
}

// NewContractHandler parses request dates in loc (UTC when nil).
func NewContractHandler(contracts usecase.IContractUseCase, balances usecase.IBalanceUseCase, loc *time.Location) *ContractHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ContractHandler{contracts: contracts, balances: balances, loc: loc}
}

// CreateContract godoc
// @Summary      Create a contract with its items
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        contract  body      request.ContractRequest  true  "Contract"
// @Success      201       {object}  response.ContractResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var payload request.ContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput(h.loc)
	if err != nil {
		abortWith(c, mapLedgerError(err))
		return
	}

	created, err := h.contracts.CreateContract(c.Request.Context(), in)
	if err != nil {
		log.Printf("[contract][handler] create failed number=%s err=%v", in.Number, err)
		abortWith(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromContract(created))
}

// ListContracts godoc
// @Summary      List contracts with their current status
// @Tags         contracts
// @Produce      json
// @Success      200  {array}  response.ContractResponse
// @Router       /contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	contracts, err := h.contracts.ListContracts(c.Request.Context())
	if err != nil {
		abortWith(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromContracts(contracts))
}

// GetContract godoc
// @Summary      Get a contract with its items
// @Tags         contracts
// @Produce      json
// @Param        id   path      string  true  "Contract ID"
// @Success      200  {object}  response.ContractResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.contracts.GetContract(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// AddItem godoc
// @Summary      Add an item to an editable contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Contract ID"
// @Param        item  body      request.ItemRequest  true  "Item"
// @Success      201   {object}  response.ItemResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /contracts/{id}/items [post]
func (h *ContractHandler) AddItem(c *gin.Context) {
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	item, err := h.contracts.AddItem(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWith(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromItem(item))
}

// DeleteItem godoc
// @Summary      Delete an item that has no consumption
// @Tags         contracts
// @Param        id       path  string  true  "Contract ID"
// @Param        item_id  path  string  true  "Item ID"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /contracts/{id}/items/{item_id} [delete]
func (h *ContractHandler) DeleteItem(c *gin.Context) {
	if err := h.contracts.DeleteItem(c.Request.Context(), c.Param("id"), c.Param("item_id")); err != nil {
		abortWith(c, mapLedgerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetBalance godoc
// @Summary      Consumption balance of a contract
// @Tags         contracts
// @Produce      json
// @Param        id   path      string  true  "Contract ID"
// @Success      200  {object}  response.BalanceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /contracts/{id}/balance [get]
func (h *ContractHandler) GetBalance(c *gin.Context) {
	b, err := h.balances.GetBalance(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBalance(b))
}
