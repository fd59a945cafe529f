package main

import (
	"gestao_contratos/internal/adapter/http/routes"
	"gestao_contratos/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Contract Ledger API
// @version         1.0
// @description     Contract consumption, amendments and order request workflow.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run(config.Load())
}
