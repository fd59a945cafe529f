package handlers

import (
	"log"
	"net/http"
	"strings"

	request "gestao_contratos/internal/adapter/http/dto/request"
	response "gestao_contratos/internal/adapter/http/dto/response"
	"gestao_contratos/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AmendmentHandler struct {
	usecase usecase.IAmendmentUseCase
}

func NewAmendmentHandler(uc usecase.IAmendmentUseCase) *AmendmentHandler {
	return &AmendmentHandler{usecase: uc}
}

// ApplyAmendment godoc
// @Summary      Register an amendment and apply its effect
// @Description  tipo "periodo" replaces the end date; tipo "valor" raises item quantities by a percentage.
// @Tags         amendments
// @Accept       json
// @Produce      json
// @Param        amendment  body      request.AmendmentRequest  true  "Amendment"
// @Success      201        {object}  response.AmendmentResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Router       /amendments [post]
func (h *AmendmentHandler) ApplyAmendment(c *gin.Context) {
	var payload request.AmendmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	a, err := h.usecase.ApplyAmendment(c.Request.Context(), payload.ToInput(strings.TrimSpace(c.GetHeader(headerUserID))))
	if err != nil {
		log.Printf("[amendment][handler] apply failed contract_id=%s err=%v", payload.ContratoID, err)
		abortWith(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromAmendment(a))
}

// ListAmendments godoc
// @Summary      Amendments of a contract, oldest first
// @Tags         amendments
// @Produce      json
// @Param        id   path      string  true  "Contract ID"
// @Success      200  {array}   response.AmendmentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /contracts/{id}/amendments [get]
func (h *AmendmentHandler) ListAmendments(c *gin.Context) {
	amendments, err := h.usecase.ListAmendments(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAmendments(amendments))
}
