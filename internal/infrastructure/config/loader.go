package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "MP"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("transaction.lockTimeoutMs", 5000)
	v.SetDefault("transaction.maxRetries", 3)

	v.SetDefault("stripe.currency", "usd")
	v.SetDefault("stripe.signatureTolerance", 300) // seconds

	v.SetDefault("rabbitmq.exchange", "marketplace.transactions")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// getEnvironment determines the environment to use based on MP_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// envOverrides maps environment variables holding secrets or deployment
// specific values onto their config keys
var envOverrides = map[string]string{
	"MP_DB_HOST":                        "database.host",
	"MP_DB_PORT":                        "database.port",
	"MP_DB_USERNAME":                    "database.username",
	"MP_DB_PASSWORD":                    "database.password",
	"MP_DB_NAME":                        "database.database",
	"MP_DB_SSL_MODE":                    "database.sslMode",
	"MP_SERVER_HOST":                    "server.host",
	"MP_SERVER_PORT":                    "server.port",
	"MP_LOGGER_LEVEL":                   "logger.level",
	"MP_STRIPE_SECRET_KEY":              "stripe.secretKey",
	"MP_STRIPE_PAYMENT_WEBHOOK_SECRET":  "stripe.paymentWebhookSecret",
	"MP_STRIPE_CONNECT_WEBHOOK_SECRET":  "stripe.connectWebhookSecret",
	"MP_STRIPE_TRANSFER_WEBHOOK_SECRET": "stripe.transferWebhookSecret",
	"MP_STRIPE_SUCCESS_URL":             "stripe.successUrl",
	"MP_STRIPE_CANCEL_URL":              "stripe.cancelUrl",
	"MP_AUTH_JWT_SECRET":                "auth.jwtSecret",
	"MP_RABBITMQ_URI":                   "rabbitmq.uri",
	"MP_RABBITMQ_EXCHANGE":              "rabbitmq.exchange",
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	for name, key := range envOverrides {
		if value := os.Getenv(name); value != "" {
			v.Set(key, value)
		}
	}

	if maxOpenConns := getEnvInt("MP_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("MP_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := getEnvInt("MP_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if lockTimeout := getEnvInt("MP_TRANSACTION_LOCK_TIMEOUT_MS", 0); lockTimeout > 0 {
		v.Set("transaction.lockTimeoutMs", lockTimeout)
	}
	if maxRetries := getEnvInt("MP_TRANSACTION_MAX_RETRIES", -1); maxRetries >= 0 {
		v.Set("transaction.maxRetries", maxRetries)
	}
	if tolerance := getEnvInt("MP_STRIPE_SIGNATURE_TOLERANCE_SECONDS", -1); tolerance >= 0 {
		v.Set("stripe.signatureTolerance", tolerance)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	config.Database.ConnMaxLifetime = config.Database.ConnMaxLifetime * time.Minute
	config.Database.ConnMaxIdleTime = config.Database.ConnMaxIdleTime * time.Minute
	config.Database.QueryTimeout = config.Database.QueryTimeout * time.Second
	config.Database.RetryDelay = config.Database.RetryDelay * time.Second

	config.Stripe.SignatureTolerance = config.Stripe.SignatureTolerance * time.Second
}
