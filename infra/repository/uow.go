package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jhaabhiiishek/finmanBackend/pkg/repository"
	"github.com/jhaabhiiishek/finmanBackend/pkg/repository/account"
	"github.com/jhaabhiiishek/finmanBackend/pkg/repository/expense"
	"github.com/jhaabhiiishek/finmanBackend/pkg/repository/expensetype"
	"github.com/jhaabhiiishek/finmanBackend/pkg/repository/transaction"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			repoKey((*account.Repository)(nil)):     func(db *gorm.DB) any { return NewAccountRepository(db) },
			repoKey((*transaction.Repository)(nil)): func(db *gorm.DB) any { return NewTransactionRepository(db) },
			repoKey((*expense.Repository)(nil)):     func(db *gorm.DB) any { return NewExpenseRepository(db) },
			repoKey((*expensetype.Repository)(nil)): func(db *gorm.DB) any { return NewExpenseTypeRepository(db) },
		},
	}
}

func repoKey(ptr any) reflect.Type {
	t := reflect.TypeOf(ptr)
	if t != nil && t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// Do runs fn in a database transaction. Calling Do on a UoW that is already
// inside a transaction joins it.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry})
	})
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// GetRepository returns the repository registered for repoType, bound to the
// current transaction when there is one.
func (u *UoW) GetRepository(repoType any) (any, error) {
	constructor, ok := u.repoRegistry[repoKey(repoType)]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %T", repoType)
	}
	return constructor(u.session()), nil
}

func (u *UoW) AccountRepository() (account.Repository, error) {
	return getTyped[account.Repository](u)
}

func (u *UoW) TransactionRepository() (transaction.Repository, error) {
	return getTyped[transaction.Repository](u)
}

func (u *UoW) ExpenseRepository() (expense.Repository, error) {
	return getTyped[expense.Repository](u)
}

func (u *UoW) ExpenseTypeRepository() (expensetype.Repository, error) {
	return getTyped[expensetype.Repository](u)
}

func getTyped[T any](u *UoW) (T, error) {
	var zero T
	repoAny, err := u.GetRepository((*T)(nil))
	if err != nil {
		return zero, err
	}
	repo, ok := repoAny.(T)
	if !ok {
		return zero, fmt.Errorf("repository has unexpected type %T", repoAny)
	}
	return repo, nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
