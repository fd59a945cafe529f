package handlers

import (
	"net/http"
	"strings"

	response "gestao_contratos/internal/adapter/http/dto/response"
	"gestao_contratos/internal/usecase"
	"gestao_contratos/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var errInvalidThreshold = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "threshold must be a number between 0 and 100", http.StatusBadRequest)

type AlertHandler struct {
	usecase usecase.IAlertUseCase
}

func NewAlertHandler(uc usecase.IAlertUseCase) *AlertHandler {
	return &AlertHandler{usecase: uc}
}

// ListAlerts godoc
// @Summary      Items whose consumption reached the threshold
// @Tags         alerts
// @Produce      json
// @Param        threshold  query     number  false  "Percent consumed, default from ALERT_THRESHOLD"
// @Success      200        {array}   response.AlertResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /alerts [get]
func (h *AlertHandler) ListAlerts(c *gin.Context) {
	threshold := h.usecase.DefaultThreshold()
	if raw := strings.TrimSpace(c.Query("threshold")); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			abortWith(c, errInvalidThreshold)
			return
		}
		threshold = parsed
	}

	alerts, err := h.usecase.ListAlerts(c.Request.Context(), threshold)
	if err != nil {
		abortWith(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAlerts(alerts))
}
