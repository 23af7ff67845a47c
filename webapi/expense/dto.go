package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
	"github.com/jhaabhiiishek/finmanBackend/webapi/common"
)

type ListExpensesRequest struct {
	UserEmail string `json:"userEmail" validate:"required,email"`
}

// AddExpenseRequest records a personal expense. It does not move money.
type AddExpenseRequest struct {
	UserEmail   string        `json:"userEmail" validate:"required,email"`
	ExpenseType string        `json:"expenseType" validate:"required,max=200"`
	Recipient   string        `json:"recipient" validate:"required,max=200"`
	Amount      *money.Amount `json:"amount" validate:"required" swaggertype:"number"`
	Remarks     string        `json:"remarks"`
	Date        common.Date   `json:"date" swaggertype:"string" example:"2024-05-06"`
}

type AddExpenseTypeRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type ExpenseResponse struct {
	ID          uuid.UUID    `json:"id"`
	UserEmail   string       `json:"userEmail"`
	ExpenseType string       `json:"expenseType"`
	Recipient   string       `json:"recipient"`
	Amount      money.Amount `json:"amount" swaggertype:"number"`
	Remarks     string       `json:"remarks"`
	Date        time.Time    `json:"date"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type ExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

type ExpenseTypeResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func toExpenseResponse(e *dto.ExpenseRead) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		UserEmail:   e.UserEmail,
		ExpenseType: e.ExpenseType,
		Recipient:   e.Recipient,
		Amount:      e.Amount,
		Remarks:     e.Remarks,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}
