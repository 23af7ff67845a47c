package infra

import (
	"context"
	"testing"

	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDBConnection_RequiresURL(t *testing.T) {
	_, err := NewDBConnection(&config.DB{}, "test")
	assert.Error(t, err)
	_, err = NewDBConnection(nil, "test")
	assert.Error(t, err)
}

func TestNewDBConnection_SQLite(t *testing.T) {
	db, err := NewDBConnection(&config.DB{Url: "sqlite:file:dbtest?mode=memory&cache=shared"}, "test")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.Equal(t, "sqlite", db.Dialector.Name())
	require.NoError(t, Migrate(context.Background(), db))
	assert.True(t, db.Migrator().HasTable("accounts"))
	assert.True(t, db.Migrator().HasTable("account_transactions"))
	assert.True(t, db.Migrator().HasTable("expense_types"))
	assert.NoError(t, Ping(context.Background(), db))
}

func TestIsSQLite(t *testing.T) {
	assert.True(t, IsSQLite("sqlite:finman.db"))
	assert.False(t, IsSQLite("postgres://localhost/finman"))
}
