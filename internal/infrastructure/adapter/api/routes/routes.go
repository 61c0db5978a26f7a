package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/metrics"
)

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Checkout *handler.CheckoutHandler
	Webhook  *handler.WebhookHandler
	Health   *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API.
// metricsHandler may be nil to disable the scrape endpoint.
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	auth *middleware.Authenticator,
	metricsPath string,
	metricsHandler http.Handler,
) {
	router.POST("/checkout", auth.RequireAuth(), handlers.Checkout.StartCheckout)

	// Webhooks authenticate by signature, never by bearer token
	webhookRoutes := router.Group("/webhook")
	{
		webhookRoutes.POST("", handlers.Webhook.Payment)
		webhookRoutes.POST("/connect", handlers.Webhook.Connect)
		webhookRoutes.POST("/transfer", handlers.Webhook.Transfer)
	}

	transactionRoutes := router.Group("/transactions")
	{
		transactionRoutes.GET("/check", auth.OptionalAuth(), handlers.Checkout.CheckPurchase)
		transactionRoutes.GET("/purchased", auth.RequireAuth(), handlers.Checkout.ListPurchased)
	}

	router.GET("/health", handlers.Health.Health)

	if metricsHandler != nil {
		router.GET(metricsPath, gin.WrapH(metricsHandler))
	}
}

// SetupMiddlewares configures global middlewares for the API.
// m may be nil when metrics are disabled.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, m *metrics.Metrics) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	if m != nil {
		router.Use(middleware.Metrics(m))
	}
}
