package routes

import (
	"log"
	"net/http"

	_ "gestao_contratos/docs"
	"gestao_contratos/internal/adapter/http/handlers"
	"gestao_contratos/internal/infrastructure/config"
	"gestao_contratos/internal/job"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run(cfg config.Config) {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	app, err := newApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}
	defer app.Close()

	startJobs(app)
	getRoutes(router.Group("/v1"), app)

	err = router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(v1 *gin.RouterGroup, app *application) {
	contractHandler := handlers.NewContractHandler(app.contracts, app.balances, app.cfg.Ledger.Location)
	amendmentHandler := handlers.NewAmendmentHandler(app.amendments)
	requestHandler := handlers.NewOrderRequestHandler(app.requests)
	orderHandler := handlers.NewOrderHandler(app.orders)
	alertHandler := handlers.NewAlertHandler(app.alerts)

	addPingRoutes(v1)
	addLedgerRoutes(v1, contractHandler, amendmentHandler, requestHandler, orderHandler, alertHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

// startJobs schedules the status refresh. A bad spec is logged and the API keeps running.
func startJobs(app *application) {
	j := job.NewStatusRefreshJob(app.contracts, app.alerts, app.cache)
	c, err := job.StartCronJob(app.cfg.Jobs.StatusRefreshCron, app.cfg.Ledger.Location, j)
	if err != nil {
		log.Printf("[cron] not scheduled spec=%q err=%v", app.cfg.Jobs.StatusRefreshCron, err)
		return
	}
	app.closers = append(app.closers, func() { c.Stop() })
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
