package routes

import (
	"shikkha/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments    = "/payments"
	PathEnrollments = "/enrollments"
	PathPurchases   = "/purchases"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler, fulfillmentHandler *handlers.FulfillmentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/create-checkout-session", paymentHandler.CreateCheckoutSession)
		payments.POST("/stripe/webhook", webhookHandler.HandleWebhook)
		payments.POST("/trigger-webhook", paymentHandler.TriggerWebhook)
		payments.GET("/:payment_id", paymentHandler.GetPayment)
		payments.GET("/by-session/:session_id", paymentHandler.GetPaymentBySession)
	}

	enrollments := rg.Group(PathEnrollments)
	{
		enrollments.POST("/free", fulfillmentHandler.EnrollFree)
	}

	purchases := rg.Group(PathPurchases)
	{
		purchases.PATCH("/:purchase_id/ship", fulfillmentHandler.ShipPurchase)
		purchases.PATCH("/:purchase_id/deliver", fulfillmentHandler.DeliverPurchase)
	}
}
