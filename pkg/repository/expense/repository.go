package expense

import (
	"context"

	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
)

type Repository interface {
	Create(ctx context.Context, create dto.ExpenseCreate) error

	// ListByUser returns the user's expenses, newest date first.
	ListByUser(ctx context.Context, email string) ([]*dto.ExpenseRead, error)
}
