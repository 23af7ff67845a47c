package expensetype

import (
	"context"

	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
)

type Repository interface {
	// Create inserts a type. A taken name yields domain.ErrAlreadyExists.
	Create(ctx context.Context, create dto.ExpenseTypeCreate) error

	// List returns every type ordered by name.
	List(ctx context.Context) ([]*dto.ExpenseTypeRead, error)

	Count(ctx context.Context) (int64, error)
}
