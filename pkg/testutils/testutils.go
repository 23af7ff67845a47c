// Package testutils builds throwaway dependencies for service and HTTP tests.
package testutils

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/infra"
	infraeventbus "github.com/jhaabhiiishek/finmanBackend/infra/eventbus"
	infrarepo "github.com/jhaabhiiishek/finmanBackend/infra/repository"
	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/account"
	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
	"github.com/jhaabhiiishek/finmanBackend/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the password of every account created by SeedAccount.
const TestPassword = "password123"

func init() {
	// Importing this package makes hashing cheap for the whole test binary.
	utils.PasswordCost = bcrypt.MinCost
}

// TestConfig returns an application config suitable for tests.
func TestConfig() *config.App {
	return &config.App{
		Env: "test",
		Server: &config.Server{
			Scheme: "http", Host: "localhost", Port: 5000, ShutdownTimeout: time.Second,
		},
		Log: &config.Log{Level: int(slog.LevelError), Format: "text"},
		DB:  &config.DB{},
		Auth: &config.Auth{Jwt: &config.Jwt{
			Secret: "test-secret",
			Expiry: time.Hour,
		}},
		Redis:     &config.Redis{KeyPrefix: "finman:events:"},
		Kafka:     &config.Kafka{TopicPrefix: "finman"},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
		Ledger:    &config.Ledger{InitialGrant: decimal.NewFromInt(1000), BcryptCost: bcrypt.MinCost},
	}
}

// Env bundles the dependencies of a test together with the concrete bus so
// tests can inspect published events.
type Env struct {
	Deps config.Deps
	DB   *gorm.DB
	Bus  *infraeventbus.MemoryEventBus
}

// NewEnv opens a private in-memory sqlite database, migrates it and wires a
// unit of work and a recording in-memory event bus on top.
func NewEnv(t testing.TB) *Env {
	t.Helper()
	cfg := TestConfig()
	cfg.DB.Url = fmt.Sprintf("sqlite:file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, infra.Migrate(context.Background(), db))

	logger := slog.New(slog.DiscardHandler)
	bus := infraeventbus.NewRecordingMemory(logger)
	return &Env{
		DB:  db,
		Bus: bus,
		Deps: config.Deps{
			Uow:      infrarepo.NewUoW(db),
			EventBus: bus,
			Logger:   logger,
			Config:   cfg,
			Ping:     func(ctx context.Context) error { return infra.Ping(ctx, db) },
			Close:    sqlDB.Close,
		},
	}
}

// SeedAccount inserts an account directly, bypassing registration.
func (e *Env) SeedAccount(t testing.TB, email string, balance money.Amount) *dto.AccountRead {
	t.Helper()
	hash, err := utils.HashPassword(TestPassword)
	require.NoError(t, err)
	ctx := context.Background()
	repo := infrarepo.NewAccountRepository(e.DB)
	require.NoError(t, repo.Create(ctx, dto.AccountCreate{
		ID:             uuid.New(),
		Name:           "Test User",
		Email:          email,
		HashedPassword: hash,
		Balance:        balance,
		Role:           account.RoleUser,
	}))
	a, err := repo.GetByEmail(ctx, email)
	require.NoError(t, err)
	require.NotNil(t, a)
	return a
}

// Balance reads the current balance of email straight from the database.
func (e *Env) Balance(t testing.TB, email string) money.Amount {
	t.Helper()
	a, err := infrarepo.NewAccountRepository(e.DB).GetByEmail(context.Background(), email)
	require.NoError(t, err)
	require.NotNil(t, a, "account %s not found", email)
	return a.Balance
}
