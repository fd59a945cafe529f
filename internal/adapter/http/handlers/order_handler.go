package handlers

import (
	"log"
	"net/http"
	"strings"

	request "gestao_contratos/internal/adapter/http/dto/request"
	response "gestao_contratos/internal/adapter/http/dto/response"
	"gestao_contratos/internal/usecase"
	"gestao_contratos/pkg"

	"github.com/gin-gonic/gin"
)

var errOrderNumberRequired = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "numero query parameter is required", http.StatusBadRequest)

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// GetOrder godoc
// @Summary      Get an order with its consumed items
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	d, err := h.usecase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrderDetail(d))
}

// FindByNumber godoc
// @Summary      Find an order by its number
// @Tags         orders
// @Produce      json
// @Param        numero  query     string  true  "Order number NNNN/YYYY"
// @Success      200     {object}  response.OrderResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Router       /orders [get]
func (h *OrderHandler) FindByNumber(c *gin.Context) {
	number := strings.TrimSpace(c.Query("numero"))
	if number == "" {
		abortWith(c, errOrderNumberRequired)
		return
	}
	d, err := h.usecase.GetByNumber(c.Request.Context(), number)
	if err != nil {
		abortWith(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrderDetail(d))
}

// AdjustItems godoc
// @Summary      Replace the consumed items of an order
// @Description  Items left out are released, new ones are consumed and changed quantities are updated.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                      true  "Editor"
// @Param        id         path      string                      true  "Order ID"
// @Param        body       body      request.AdjustOrderRequest  true  "Items"
// @Success      200        {object}  response.OrderResponse
// @Failure      422        {object}  pkg.HTTPError
// @Router       /orders/{id}/items [put]
func (h *OrderHandler) AdjustItems(c *gin.Context) {
	who, ok := requester(c)
	if !ok {
		abortWith(c, errMissingUser)
		return
	}
	var payload request.AdjustOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	d, err := h.usecase.AdjustConsumption(c.Request.Context(), c.Param("id"), payload.Entries(), who.ID)
	if err != nil {
		log.Printf("[order][handler] adjust failed order_id=%s err=%v", c.Param("id"), err)
		abortWith(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrderDetail(d))
}

// ListByContract godoc
// @Summary      Orders of a contract
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Contract ID"
// @Success      200  {array}   response.OrderResponse
// @Router       /contracts/{id}/orders [get]
func (h *OrderHandler) ListByContract(c *gin.Context) {
	orders, err := h.usecase.ListOrdersForContract(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}
