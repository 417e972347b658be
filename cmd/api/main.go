package main

import (
	_ "payment_reconciler/docs"
	"payment_reconciler/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Payment Reconciler API
// @version         1.0
// @description     Payment client service: authorizations, charges, cancellations and shipments reconciled against the payment API, with snapshots in DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
