package repository

import (
	"context"

	"github.com/jhaabhiiishek/finmanBackend/pkg/repository/account"
	"github.com/jhaabhiiishek/finmanBackend/pkg/repository/expense"
	"github.com/jhaabhiiishek/finmanBackend/pkg/repository/expensetype"
	"github.com/jhaabhiiishek/finmanBackend/pkg/repository/transaction"
)

// UnitOfWork defines the contract for transactional work and repository access.
//
// Repositories obtained from the UnitOfWork passed to Do share its
// transaction, so every change made inside fn commits or rolls back together.
//
//	err := uow.Do(ctx, func(uow repository.UnitOfWork) error {
//		repoAny, err := uow.GetRepository((*account.Repository)(nil))
//		...
//	})
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an error
	// the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns the repository whose interface matches repoType,
	// given as a typed nil pointer such as (*account.Repository)(nil).
	GetRepository(repoType any) (any, error)

	AccountRepository() (account.Repository, error)
	TransactionRepository() (transaction.Repository, error)
	ExpenseRepository() (expense.Repository, error)
	ExpenseTypeRepository() (expensetype.Repository, error)
}
