package infra

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jhaabhiiishek/finmanBackend/infra/repository"
	"github.com/jhaabhiiishek/finmanBackend/internal/migrations"
	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlitePrefix selects the embedded sqlite driver, e.g. "sqlite:finman.db"
// or "sqlite:file::memory:?cache=shared".
const sqlitePrefix = "sqlite:"

// IsSQLite reports whether url points at a sqlite database.
func IsSQLite(url string) bool {
	return strings.HasPrefix(url, sqlitePrefix)
}

// NewDBConnection opens the database named by cnf.Url. Anything not
// prefixed with "sqlite:" is treated as a postgres DSN.
func NewDBConnection(cnf *config.DB, appEnv string) (*gorm.DB, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}
	gormCfg := &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
		NowFunc:                func() time.Time { return time.Now().UTC() },
	}

	var dialector gorm.Dialector
	if IsSQLite(cnf.Url) {
		dialector = sqlite.Open(strings.TrimPrefix(cnf.Url, sqlitePrefix))
	} else {
		dialector = postgres.Open(cnf.Url)
	}

	connection, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	if IsSQLite(cnf.Url) {
		// sqlite serialises writers; one connection keeps transactions from
		// failing with SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
	}
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}

// Migrate brings the schema up to date: versioned SQL migrations for
// postgres and AutoMigrate for sqlite.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return db.WithContext(ctx).AutoMigrate(repository.Models()...)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	// A dedicated connection keeps the migrator from closing the shared pool.
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return err
	}
	driver, err := migratepostgres.WithConnection(ctx, conn, &migratepostgres.Config{})
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("migrate driver: %w", err)
	}
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		_ = driver.Close()
		return fmt.Errorf("migrate source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = driver.Close()
		return fmt.Errorf("migrate init: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Ping checks the database connection.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
