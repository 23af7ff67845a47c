package account_test

import (
	"strings"
	"testing"

	"github.com/jhaabhiiishek/finmanBackend/pkg/domain"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/account"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
	"github.com/jhaabhiiishek/finmanBackend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	acc, err := account.New(" Alice ", "Alice@Example.com", "pw-123", money.MustParse("1000"))
	require.NoError(t, err)

	assert.Equal(t, "Alice", acc.Name)
	assert.Equal(t, "alice@example.com", acc.Email)
	assert.Equal(t, money.Amount(100000), acc.Balance)
	assert.Equal(t, account.RoleUser, acc.Role)
	assert.Equal(t, account.DefaultNotifications, acc.Notifications)
	assert.True(t, utils.CheckPasswordHash("pw-123", acc.HashedPassword))
	assert.NotEqual(t, "pw-123", acc.HashedPassword)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name     string
		acctName string
		email    string
		password string
		grant    money.Amount
	}{
		{name: "missing email", email: "", password: "pw"},
		{name: "bad email", email: "not-an-email", password: "pw"},
		{name: "missing password", email: "a@example.com", password: ""},
		{name: "long password", email: "a@example.com", password: strings.Repeat("x", 73)},
		{name: "long name", acctName: strings.Repeat("n", 101), email: "a@example.com", password: "pw"},
		{name: "negative grant", email: "a@example.com", password: "pw", grant: -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := account.New(tc.acctName, tc.email, tc.password, tc.grant)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

