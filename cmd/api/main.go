package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/publisher"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/usecase/checkout"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/usecase/errorlog"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/usecase/fee"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/usecase/onboarding"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/usecase/reconcile"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/usecase/webhook"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/database"
	stripegateway "github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/gateway/stripe"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/metrics"
	amqppublisher "github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/publisher/amqp"
	timeProvider "github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(cfg.Logger.Format, coreport.ParseLogLevel(cfg.Logger.Level))
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	var appMetrics *metrics.Metrics
	if cfg.Metrics.Enabled {
		appMetrics = metrics.New()
	}

	// Connect to the database
	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp)
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), time.Minute)
	_, err = dbManager.Connect(connectCtx)
	cancelConnect()
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	if appMetrics != nil {
		if err := dbManager.RegisterMetrics(appMetrics.Registerer()); err != nil {
			appLogger.Warn("Failed to register database metrics", map[string]any{"error": err.Error()})
		}
	}

	// Run migrations
	if err := dbManager.MigrationManager().MigrateAll(context.Background()); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	uow := dbManager.CreateUnitOfWork()

	eventPublisher := newEventPublisher(cfg, appLogger, tp)
	if appMetrics != nil {
		eventPublisher = metrics.InstrumentPublisher(eventPublisher, appMetrics)
	}
	defer func() {
		if err := eventPublisher.Close(); err != nil {
			appLogger.Warn("Failed to close event publisher", map[string]any{"error": err.Error()})
		}
	}()

	paymentGateway := stripegateway.NewGateway(stripegateway.Config{
		SecretKey:  cfg.Stripe.SecretKey,
		Currency:   cfg.Stripe.Currency,
		SuccessURL: cfg.Stripe.SuccessURL,
		CancelURL:  cfg.Stripe.CancelURL,
	}, nil, appLogger)

	// Initialize use cases
	errorLog := errorlog.NewWriter(uow, tp, appLogger)
	resolver := fee.NewResolver(uow, appLogger)
	reconciler := reconcile.NewReconciler(uow, errorLog, eventPublisher, tp, appLogger)
	tracker := onboarding.NewTracker(uow, tp, appLogger)

	verifier := stripegateway.NewSignatureVerifier(map[entity.Channel]string{
		entity.ChannelPayment:  cfg.Stripe.PaymentWebhookSecret,
		entity.ChannelConnect:  cfg.Stripe.ConnectWebhookSecret,
		entity.ChannelTransfer: cfg.Stripe.TransferWebhookSecret,
	}, cfg.Stripe.SignatureTolerance)

	var checkoutUseCase usecase.CheckoutUseCase = checkout.NewService(uow, resolver, paymentGateway, errorLog, tp, appLogger)
	var webhookUseCase usecase.WebhookUseCase = webhook.NewService(
		verifier,
		stripegateway.NewDecoder(),
		paymentGateway,
		reconciler,
		tracker,
		errorLog,
		uow,
		tp,
		appLogger,
	)
	if appMetrics != nil {
		checkoutUseCase = metrics.InstrumentCheckout(checkoutUseCase, appMetrics)
		webhookUseCase = metrics.InstrumentWebhooks(webhookUseCase, appMetrics)
	}

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, appMetrics)

	var metricsHandler http.Handler
	if appMetrics != nil {
		metricsHandler = appMetrics.Handler()
	}
	routes.SetupRoutes(router, routes.Handlers{
		Checkout: handler.NewCheckoutHandler(checkoutUseCase, appLogger),
		Webhook:  handler.NewWebhookHandler(webhookUseCase, appLogger),
		Health:   handler.NewHealthHandler(dbManager, appLogger),
	}, middleware.NewAuthenticator(cfg.Auth.JWTSecret), cfg.Metrics.Path, metricsHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// newEventPublisher dials the broker, falling back to a no-op publisher when
// no broker is configured or it is unreachable at startup.
func newEventPublisher(cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider) publisher.EventPublisher {
	if cfg.RabbitMQ.URI == "" {
		appLogger.Info("Event publishing disabled", nil)
		return amqppublisher.NoopPublisher{}
	}

	p, err := amqppublisher.Dial(amqppublisher.Config{
		URI:      cfg.RabbitMQ.URI,
		Exchange: cfg.RabbitMQ.Exchange,
	}, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to connect to message broker, event publishing disabled", map[string]any{
			"error": err.Error(),
		})
		return amqppublisher.NoopPublisher{}
	}
	return p
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	required := []struct {
		value string
		name  string
		env   string
	}{
		{cfg.Database.Host, "database.host", "MP_DB_HOST"},
		{cfg.Database.Port, "database.port", "MP_DB_PORT"},
		{cfg.Database.Username, "database.username", "MP_DB_USERNAME"},
		{cfg.Database.Password, "database.password", "MP_DB_PASSWORD"},
		{cfg.Database.Database, "database.database", "MP_DB_NAME"},
		{cfg.Stripe.SecretKey, "stripe.secretKey", "MP_STRIPE_SECRET_KEY"},
		{cfg.Stripe.PaymentWebhookSecret, "stripe.paymentWebhookSecret", "MP_STRIPE_PAYMENT_WEBHOOK_SECRET"},
		{cfg.Stripe.ConnectWebhookSecret, "stripe.connectWebhookSecret", "MP_STRIPE_CONNECT_WEBHOOK_SECRET"},
		{cfg.Stripe.SuccessURL, "stripe.successUrl", "MP_STRIPE_SUCCESS_URL"},
		{cfg.Stripe.CancelURL, "stripe.cancelUrl", "MP_STRIPE_CANCEL_URL"},
		{cfg.Auth.JWTSecret, "auth.jwtSecret", "MP_AUTH_JWT_SECRET"},
	}
	for _, r := range required {
		if r.value == "" {
			missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s environment variable)", r.name, r.env))
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}
	if cfg.Transaction.LockTimeoutMs == 0 {
		missingConfigs = append(missingConfigs, "transaction.lockTimeoutMs")
	}
	if cfg.Transaction.MaxRetries == 0 {
		missingConfigs = append(missingConfigs, "transaction.maxRetries")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if cfg.Metrics.Enabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return fmt.Errorf("invalid metrics.path %q: must start with /", cfg.Metrics.Path)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		switch strings.ToLower(cfg.Database.SSLMode) {
		case "require", "verify-ca", "verify-full":
		default:
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}
		if cfg.Stripe.TransferWebhookSecret == "" {
			warnings = append(warnings, "stripe.transferWebhookSecret is empty, transfer webhooks will be rejected")
		}
		if len(cfg.Auth.JWTSecret) < 32 {
			warnings = append(warnings, "auth.jwtSecret should be at least 32 bytes in production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
