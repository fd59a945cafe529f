package routes

import (
	"gestao_contratos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathContracts  = "/contracts"
	PathAmendments = "/amendments"
	PathRequests   = "/requests"
	PathOrders     = "/orders"
	PathAlerts     = "/alerts"
)

func addLedgerRoutes(
	rg *gin.RouterGroup,
	contractHandler *handlers.ContractHandler,
	amendmentHandler *handlers.AmendmentHandler,
	requestHandler *handlers.OrderRequestHandler,
	orderHandler *handlers.OrderHandler,
	alertHandler *handlers.AlertHandler,
) {
	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", contractHandler.CreateContract)
		contracts.GET("", contractHandler.ListContracts)
		contracts.GET("/:id", contractHandler.GetContract)
		contracts.POST("/:id/items", contractHandler.AddItem)
		contracts.DELETE("/:id/items/:item_id", contractHandler.DeleteItem)
		contracts.GET("/:id/balance", contractHandler.GetBalance)
		contracts.GET("/:id/amendments", amendmentHandler.ListAmendments)
		contracts.GET("/:id/requests", requestHandler.ListByContract)
		contracts.GET("/:id/orders", orderHandler.ListByContract)
	}

	rg.POST(PathAmendments, amendmentHandler.ApplyAmendment)

	requests := rg.Group(PathRequests)
	{
		requests.POST("", requestHandler.Submit)
		requests.GET("/:id", requestHandler.GetRequest)
		requests.PATCH("/:id/approve", requestHandler.Approve)
		requests.PATCH("/:id/refuse", requestHandler.Refuse)
		requests.PATCH("/:id/cancel", requestHandler.Cancel)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.FindByNumber)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id/items", orderHandler.AdjustItems)
	}

	rg.GET(PathAlerts, alertHandler.ListAlerts)
}
