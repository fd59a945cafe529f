package handlers

import (
	"context"
	"log"
	"net/http"

	request "gestao_contratos/internal/adapter/http/dto/request"
	response "gestao_contratos/internal/adapter/http/dto/response"
	"gestao_contratos/internal/domain/entities"
	"gestao_contratos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderRequestHandler drives the order request workflow. The acting user comes from the
// X-User-ID and X-User-Funds headers.
type OrderRequestHandler struct {
	usecase usecase.IOrderRequestUseCase
}

func NewOrderRequestHandler(uc usecase.IOrderRequestUseCase) *OrderRequestHandler {
	return &OrderRequestHandler{usecase: uc}
}

// Submit godoc
// @Summary      Submit an order request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        X-User-ID     header    string                       true   "Requester"
// @Param        X-User-Funds  header    string                       false  "Requester funds, comma separated"
// @Param        request       body      request.OrderRequestRequest  true   "Order request"
// @Success      201           {object}  response.OrderRequestResponse
// @Failure      400           {object}  pkg.HTTPError
// @Failure      422           {object}  pkg.HTTPError
// @Router       /requests [post]
func (h *OrderRequestHandler) Submit(c *gin.Context) {
	who, ok := requester(c)
	if !ok {
		abortWith(c, errMissingUser)
		return
	}
	var payload request.OrderRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	r, err := h.usecase.Submit(c.Request.Context(), payload.ToInput(who))
	if err != nil {
		log.Printf("[request][handler] submit failed contract_id=%s requester_id=%s err=%v", payload.ContratoID, who.ID, err)
		abortWith(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromOrderRequest(r))
}

// Approve godoc
// @Summary      Approve a pending request, creating its order
// @Tags         requests
// @Produce      json
// @Param        X-User-ID  header    string  true  "Approver"
// @Param        id         path      string  true  "Request ID"
// @Success      200        {object}  response.ApprovalResponse
// @Failure      409        {object}  pkg.HTTPError
// @Failure      422        {object}  pkg.HTTPError
// @Router       /requests/{id}/approve [patch]
func (h *OrderRequestHandler) Approve(c *gin.Context) {
	who, ok := requester(c)
	if !ok {
		abortWith(c, errMissingUser)
		return
	}
	id := c.Param("id")
	number, err := h.usecase.Approve(c.Request.Context(), id, who.ID)
	if err != nil {
		abortWith(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.ApprovalResponse{SolicitacaoID: id, NumeroOrdem: number.String()})
}

// Refuse godoc
// @Summary      Refuse a pending request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                 true  "Decider"
// @Param        id         path      string                 true  "Request ID"
// @Param        body       body      request.RefuseRequest  true  "Reason"
// @Success      200        {object}  response.OrderRequestResponse
// @Failure      409        {object}  pkg.HTTPError
// @Router       /requests/{id}/refuse [patch]
func (h *OrderRequestHandler) Refuse(c *gin.Context) {
	var payload request.RefuseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	h.decide(c, func(ctx context.Context, id, by string) (entities.OrderRequest, error) {
		return h.usecase.Refuse(ctx, id, by, payload.Motivo)
	})
}

// Cancel godoc
// @Summary      Cancel a pending request (requester only)
// @Tags         requests
// @Produce      json
// @Param        X-User-ID  header    string  true  "Requester"
// @Param        id         path      string  true  "Request ID"
// @Success      200        {object}  response.OrderRequestResponse
// @Failure      409        {object}  pkg.HTTPError
// @Router       /requests/{id}/cancel [patch]
func (h *OrderRequestHandler) Cancel(c *gin.Context) {
	h.decide(c, h.usecase.Cancel)
}

func (h *OrderRequestHandler) decide(
	c *gin.Context,
	decider func(ctx context.Context, requestID, by string) (entities.OrderRequest, error),
) {
	who, ok := requester(c)
	if !ok {
		abortWith(c, errMissingUser)
		return
	}
	r, err := decider(c.Request.Context(), c.Param("id"), who.ID)
	if err != nil {
		abortWith(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrderRequest(r))
}

// GetRequest godoc
// @Summary      Get an order request
// @Tags         requests
// @Produce      json
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  response.OrderRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /requests/{id} [get]
func (h *OrderRequestHandler) GetRequest(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrderRequest(r))
}

// ListByContract godoc
// @Summary      Order requests of a contract
// @Tags         requests
// @Produce      json
// @Param        id   path      string  true  "Contract ID"
// @Success      200  {array}   response.OrderRequestResponse
// @Router       /contracts/{id}/requests [get]
func (h *OrderRequestHandler) ListByContract(c *gin.Context) {
	requests, err := h.usecase.ListByContract(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrderRequests(requests))
}
