package main

import (
	_ "paystand_bridge/docs"
	"paystand_bridge/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Paystand Integration API
// @version         1.0
// @description     Proxy for the Paystand payment platform with a DynamoDB mirror of customers and payers.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the Paystand access token.

func main() {
	routes.Run()
}
