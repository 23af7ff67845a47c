package app_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/jhaabhiiishek/finmanBackend/pkg/app"
	"github.com/jhaabhiiishek/finmanBackend/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WiresServicesAndAudit(t *testing.T) {
	env := testutils.NewEnv(t)
	var buf bytes.Buffer
	env.Deps.Logger = slog.New(slog.NewTextHandler(&buf, nil))

	a := app.New(env.Deps)
	require.NotNil(t, a.AuthService)
	require.NotNil(t, a.AccountService)
	require.NotNil(t, a.LedgerService)
	require.NotNil(t, a.ExpenseService)

	_, err := a.AccountService.Register(context.Background(), "Alice", "alice@example.com", "secret")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "type=account.registered")
}
