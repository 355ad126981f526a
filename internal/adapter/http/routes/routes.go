package routes

import (
	"log"
	"os"
	"strconv"

	_ "shikkha/docs" // This will be auto-generated
	"shikkha/internal/adapter/http/handlers"
	"shikkha/internal/adapter/persistence/repository"
	"shikkha/internal/infrastructure/database"
	"shikkha/internal/infrastructure/payments"
	"shikkha/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	courseRepo := repository.NewCourseDynamoRepository(ddb)
	bookRepo := repository.NewBookDynamoRepository(ddb)
	enrollmentRepo := repository.NewEnrollmentDynamoRepository(ddb)
	purchaseRepo := repository.NewBookPurchaseDynamoRepository(ddb)
	cartRepo := repository.NewCartDynamoRepository(ddb)
	studentRepo := repository.NewStudentDynamoRepository(ddb)
	earningsLedger := repository.NewEducatorEarningsDynamoLedger(ddb)

	gateway, err := payments.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY"))
	if err != nil {
		log.Fatalf("Stripe gateway not configured: %v", err)
	}

	// Unsigned webhook payloads could complete arbitrary payments, so a
	// missing signing secret is fatal at startup.
	webhookProcessor, err := payments.NewStripeWebhookProcessor(os.Getenv("STRIPE_WEBHOOK_SECRET"))
	if err != nil {
		log.Fatalf("Stripe webhook processor not configured: %v", err)
	}

	checkoutCfg := usecase.CheckoutConfig{
		SuccessURL: getenvDefault("CHECKOUT_SUCCESS_URL", "http://localhost:3000/payment/success"),
		CancelURL:  getenvDefault("CHECKOUT_CANCEL_URL", "http://localhost:3000/payment/cancel"),
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(paymentRepo, courseRepo, bookRepo, enrollmentRepo, purchaseRepo, cartRepo, gateway, checkoutCfg)
	reconcileUseCase := usecase.NewReconcileUseCase(paymentRepo, courseRepo, bookRepo, enrollmentRepo, purchaseRepo, cartRepo, studentRepo, earningsLedger, gateway)
	queryUseCase := usecase.NewPaymentQueryUseCase(paymentRepo)
	enrollmentUseCase := usecase.NewEnrollmentUseCase(courseRepo, enrollmentRepo)
	fulfillmentUseCase := usecase.NewFulfillmentUseCase(purchaseRepo)

	paymentHandler := handlers.NewPaymentHandler(checkoutUseCase, reconcileUseCase, queryUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookProcessor, reconcileUseCase)
	fulfillmentHandler := handlers.NewFulfillmentHandler(enrollmentUseCase, fulfillmentUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, webhookHandler, fulfillmentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
