package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
)

// ExpenseCommand is the service input for recording an expense.
type ExpenseCommand struct {
	UserEmail   string
	ExpenseType string
	Recipient   string
	Amount      money.Amount
	Remarks     string
	Date        time.Time
}

type ExpenseCreate struct {
	ID          uuid.UUID
	UserEmail   string
	ExpenseType string
	Recipient   string
	Amount      money.Amount
	Remarks     string
	Date        time.Time
	CreatedAt   time.Time
}

type ExpenseRead struct {
	ID          uuid.UUID
	UserEmail   string
	ExpenseType string
	Recipient   string
	Amount      money.Amount
	Remarks     string
	Date        time.Time
	CreatedAt   time.Time
}

type ExpenseTypeCreate struct {
	ID   uuid.UUID
	Name string
}

type ExpenseTypeRead struct {
	ID   uuid.UUID
	Name string
}
