package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/usecase/fee"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/config"
)

// takeRates is the fee policy surface managed from the command line
type takeRates interface {
	Resolve(ctx context.Context, sellerUserID uint64, at time.Time) (*entity.TakeRate, error)
	Split(ctx context.Context, sellerUserID uint64, total int64, at time.Time) (entity.FeeSplit, error)
	AddRate(ctx context.Context, sellerUserID *uint64, rate decimal.Decimal, dateFrom, dateTo time.Time) (*entity.TakeRate, error)
}

// env holds the collaborators a command runs against
type env struct {
	cfg       *config.Config
	logger    coreport.Logger
	takeRates takeRates
	migrate   func(ctx context.Context) error
	version   func(ctx context.Context) (string, error)
	close     func() error
}

type envOpener func(ctx context.Context) (*env, error)

// openEnv loads configuration and connects to the database
func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	appLogger, err := logger.NewZapLogger(cfg.Logger.Format, coreport.ParseLogLevel(cfg.Logger.Level))
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	tp := timeProvider.NewRealTimeProvider()
	manager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp)
	if _, err := manager.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	migrations := manager.MigrationManager()
	return &env{
		cfg:       cfg,
		logger:    appLogger,
		takeRates: fee.NewResolver(manager.CreateUnitOfWork(), appLogger),
		migrate:   migrations.MigrateAll,
		version:   migrations.GetCurrentVersion,
		close: func() error {
			_ = appLogger.Flush()
			return manager.Close()
		},
	}, nil
}
