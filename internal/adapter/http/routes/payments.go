package routes

import (
	"payment_reconciler/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/authorize", paymentHandler.Authorize)
		payments.POST("/charges", paymentHandler.Charge)

		payments.GET("/:payment_id", paymentHandler.GetPayment)
		payments.POST("/:payment_id/charges", paymentHandler.ChargeAuthorization)
		payments.POST("/:payment_id/cancels", paymentHandler.CancelAmount)
		payments.POST("/:payment_id/authorize/cancels", paymentHandler.CancelAuthorization)
		payments.POST("/:payment_id/charges/:charge_id/cancels", paymentHandler.CancelCharge)
		payments.POST("/:payment_id/shipments", paymentHandler.Ship)

		// Read-only views over the stored snapshots.
		payments.GET("/:payment_id/snapshot", paymentHandler.GetSnapshot)
		payments.GET("/:payment_id/transactions", paymentHandler.ListTransactions)
	}
}
