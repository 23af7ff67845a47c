package initializer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jhaabhiiishek/finmanBackend/infra"
	infra_eventbus "github.com/jhaabhiiishek/finmanBackend/infra/eventbus"
	infra_repository "github.com/jhaabhiiishek/finmanBackend/infra/repository"
	"github.com/jhaabhiiishek/finmanBackend/internal/fixtures/expensetypes"
	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/jhaabhiiishek/finmanBackend/pkg/eventbus"
	"github.com/jhaabhiiishek/finmanBackend/pkg/service/expense"
	"github.com/jhaabhiiishek/finmanBackend/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (deps config.Deps, err error) {
	logger := setupLogger(cfg.Log)
	deps.Logger = logger
	deps.Config = cfg

	if cfg.Ledger.BcryptCost < bcrypt.MinCost || cfg.Ledger.BcryptCost > bcrypt.MaxCost {
		return deps, fmt.Errorf(
			"LEDGER_BCRYPT_COST must be between %d and %d",
			bcrypt.MinCost, bcrypt.MaxCost,
		)
	}
	utils.PasswordCost = cfg.Ledger.BcryptCost

	// Initialize database
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return deps, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return deps, fmt.Errorf("failed to access database handle: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := infra.Migrate(ctx, db); err != nil {
		_ = sqlDB.Close()
		return deps, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize unit of work
	deps.Uow = infra_repository.NewUoW(db)
	deps.Ping = func(ctx context.Context) error { return infra.Ping(ctx, db) }

	// Initialize event bus
	bus, err := initEventBus(cfg, logger)
	if err != nil {
		_ = sqlDB.Close()
		return deps, err
	}
	deps.EventBus = bus
	deps.Close = func() error {
		return errors.Join(bus.Close(), sqlDB.Close())
	}

	seedExpenseTypes(ctx, deps, logger)
	return deps, nil
}

// initEventBus picks kafka when brokers are configured, then redis, and
// falls back to the in-process bus.
func initEventBus(cfg *config.App, logger *slog.Logger) (eventbus.Bus, error) {
	switch {
	case cfg.Kafka != nil && len(cfg.Kafka.Brokers) > 0:
		bus, err := infra_eventbus.NewWithKafka(cfg.Kafka, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Kafka event bus: %w", err)
		}
		logger.Info("Publishing events to kafka", "brokers", cfg.Kafka.Brokers)
		return bus, nil
	case cfg.Redis != nil && cfg.Redis.URL != "":
		bus, err := infra_eventbus.NewWithRedis(cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis event bus: %w", err)
		}
		logger.Info("Publishing events to redis streams", "prefix", cfg.Redis.KeyPrefix)
		return bus, nil
	default:
		return infra_eventbus.NewWithMemory(logger), nil
	}
}

// seedExpenseTypes loads the embedded defaults into an empty expense type
// table. Failures are logged and do not stop startup.
func seedExpenseTypes(ctx context.Context, deps config.Deps, logger *slog.Logger) {
	names, err := expensetypes.Load("")
	if err != nil {
		logger.Warn("Failed to load expense types from fixture", "error", err)
		return
	}
	added, err := expense.NewService(deps).SeedTypes(ctx, names)
	if err != nil {
		logger.Warn("Failed to seed expense types", "error", err)
		return
	}
	if added == 0 {
		logger.Info("Skipping expense types seed; table not empty")
	}
}
