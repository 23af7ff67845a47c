package expense_test

import (
	"testing"
	"time"

	"github.com/jhaabhiiishek/finmanBackend/pkg/domain"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/expense"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	e, err := expense.New("A@example.com", " Food ", "Cafe", 1250, "coffee", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", e.UserEmail)
	assert.Equal(t, "Food", e.ExpenseType)
	assert.Equal(t, "Cafe", e.Recipient)
	assert.False(t, e.Date.IsZero())
}

func TestNew_Validation(t *testing.T) {
	_, err := expense.New("a@example.com", "", "Cafe", 100, "", time.Time{})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.EqualError(t, err, "missing required fields")

	_, err = expense.New("a@example.com", "Food", "Cafe", 0, "", time.Time{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewType(t *testing.T) {
	tp, err := expense.NewType("  Travel ")
	require.NoError(t, err)
	assert.Equal(t, "Travel", tp.Name)

	_, err = expense.NewType("   ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
