package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Transaction TransactionConfig `mapstructure:"transaction"`
	Stripe      StripeConfig      `mapstructure:"stripe"`
	Auth        AuthConfig        `mapstructure:"auth"`
	RabbitMQ    RabbitMQConfig    `mapstructure:"rabbitmq"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TransactionConfig contains settings for database transactions that lock transaction rows
type TransactionConfig struct {
	LockTimeoutMs int64 `mapstructure:"lockTimeoutMs"`
	MaxRetries    int   `mapstructure:"maxRetries"`
}

// StripeConfig contains payment processor settings
type StripeConfig struct {
	SecretKey             string        `mapstructure:"secretKey"`
	PaymentWebhookSecret  string        `mapstructure:"paymentWebhookSecret"`
	ConnectWebhookSecret  string        `mapstructure:"connectWebhookSecret"`
	TransferWebhookSecret string        `mapstructure:"transferWebhookSecret"`
	Currency              string        `mapstructure:"currency"`
	SuccessURL            string        `mapstructure:"successUrl"`
	CancelURL             string        `mapstructure:"cancelUrl"`
	SignatureTolerance    time.Duration `mapstructure:"signatureTolerance"` // seconds
}

// AuthConfig contains bearer token settings
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwtSecret"`
}

// RabbitMQConfig contains event publisher settings. An empty URI disables publishing.
type RabbitMQConfig struct {
	URI      string `mapstructure:"uri"`
	Exchange string `mapstructure:"exchange"`
}

// MetricsConfig contains prometheus settings
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
