package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "payment_reconciler/docs" // This will be auto-generated
	"payment_reconciler/internal/adapter/http/handlers"
	"payment_reconciler/internal/adapter/persistence/repository"
	"payment_reconciler/internal/infrastructure/database"
	"payment_reconciler/internal/infrastructure/payments"
	"payment_reconciler/internal/usecase"
	"payment_reconciler/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(port()))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	paymentUseCase := newPaymentUseCase(context.Background())
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
}

func newPaymentUseCase(ctx context.Context) *usecase.PaymentUseCase {
	var (
		snapshots    interfaces.IPaymentSnapshotRepository
		transactions interfaces.ITransactionRepository
	)
	ddb, cfg, err := database.ConnectDynamoDB(ctx)
	switch {
	case err != nil:
		log.Printf("[payment][routes] snapshots disabled: dynamodb unavailable err=%v", err)
	case !cfg.Enabled:
		log.Printf("[payment][routes] snapshots disabled by SNAPSHOTS_ENABLED")
	default:
		snapshots = repository.NewPaymentSnapshotDynamoRepository(ddb, cfg.SnapshotsTable)
		transactions = repository.NewTransactionDynamoRepository(ddb, cfg.TransactionsTable)
	}

	gateway, err := payments.NewGatewayFromEnv()
	if err != nil {
		log.Printf("Payment gateway not configured: %v", err)
	}

	return usecase.NewPaymentUseCase(gateway, snapshots, transactions)
}

func port() int {
	if raw := os.Getenv("PORT"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil && p > 0 {
			return p
		}
		log.Printf("[payment][routes] invalid PORT %q; using %d", raw, defaultPort)
	}
	return defaultPort
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
