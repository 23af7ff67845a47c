// Package expense models personal spending records. Expenses are
// bookkeeping only and never touch an account balance.
package expense

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
	"github.com/jhaabhiiishek/finmanBackend/pkg/utils"
)

const maxFieldLength = 200

type Expense struct {
	ID          uuid.UUID
	UserEmail   string
	ExpenseType string
	Recipient   string
	Amount      money.Amount
	Remarks     string
	Date        time.Time
	CreatedAt   time.Time
}

// New validates and builds an expense. A zero date means now.
func New(
	userEmail, expenseType, recipient string,
	amount money.Amount,
	remarks string,
	date time.Time,
) (*Expense, error) {
	userEmail = utils.NormalizeEmail(userEmail)
	expenseType = strings.TrimSpace(expenseType)
	recipient = strings.TrimSpace(recipient)

	switch {
	case userEmail == "" || expenseType == "" || recipient == "":
		return nil, domain.NewValidationError("missing required fields")
	case !amount.IsPositive():
		return nil, domain.NewValidationError("amount must be positive")
	case len(expenseType) > maxFieldLength || len(recipient) > maxFieldLength:
		return nil, domain.NewValidationError("fields must be at most %d characters", maxFieldLength)
	}

	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}
	return &Expense{
		ID:          uuid.New(),
		UserEmail:   userEmail,
		ExpenseType: expenseType,
		Recipient:   recipient,
		Amount:      amount,
		Remarks:     remarks,
		Date:        date.UTC(),
		CreatedAt:   now,
	}, nil
}

// Type is a named spending category offered to clients.
type Type struct {
	ID   uuid.UUID
	Name string
}

// NewType validates an expense type name.
func NewType(name string) (*Type, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("expense type is required")
	}
	if len(name) > maxFieldLength {
		return nil, domain.NewValidationError("expense type must be at most %d characters", maxFieldLength)
	}
	return &Type{ID: uuid.New(), Name: name}, nil
}
