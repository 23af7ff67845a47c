// Package expense records personal expenses and the catalogue of expense types.
package expense

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/expense"
	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
	"github.com/jhaabhiiishek/finmanBackend/pkg/repository"
	"github.com/jhaabhiiishek/finmanBackend/pkg/utils"
)

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func NewService(deps config.Deps) *Service {
	return &Service{uow: deps.Uow, logger: deps.Logger}
}

// AddExpense validates and stores an expense. Balances are not affected.
func (s *Service) AddExpense(
	ctx context.Context,
	cmd dto.ExpenseCommand,
) (e *dto.ExpenseRead, err error) {
	exp, err := expense.New(
		cmd.UserEmail,
		cmd.ExpenseType,
		cmd.Recipient,
		cmd.Amount,
		cmd.Remarks,
		cmd.Date,
	)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ExpenseRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, dto.ExpenseCreate{
			ID:          exp.ID,
			UserEmail:   exp.UserEmail,
			ExpenseType: exp.ExpenseType,
			Recipient:   exp.Recipient,
			Amount:      exp.Amount,
			Remarks:     exp.Remarks,
			Date:        exp.Date,
			CreatedAt:   exp.CreatedAt,
		})
	})
	if err != nil {
		s.logger.Error("AddExpense failed", "email", exp.UserEmail, "error", err)
		return nil, err
	}
	s.logger.Info("Expense saved", "email", exp.UserEmail, "expenseID", exp.ID)
	return &dto.ExpenseRead{
		ID:          exp.ID,
		UserEmail:   exp.UserEmail,
		ExpenseType: exp.ExpenseType,
		Recipient:   exp.Recipient,
		Amount:      exp.Amount,
		Remarks:     exp.Remarks,
		Date:        exp.Date,
		CreatedAt:   exp.CreatedAt,
	}, nil
}

// ListExpenses returns the expenses of email, newest date first.
func (s *Service) ListExpenses(
	ctx context.Context,
	email string,
) (list []*dto.ExpenseRead, err error) {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return nil, domain.NewValidationError("user email is required")
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ExpenseRepository()
		if err != nil {
			return err
		}
		list, err = repo.ListByUser(ctx, email)
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Service) ListTypes(ctx context.Context) (types []*dto.ExpenseTypeRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ExpenseTypeRepository()
		if err != nil {
			return err
		}
		types, err = repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return types, nil
}

// AddType adds an expense type. Names are unique.
func (s *Service) AddType(ctx context.Context, name string) (*dto.ExpenseTypeRead, error) {
	et, err := expense.NewType(name)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ExpenseTypeRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, dto.ExpenseTypeCreate{ID: et.ID, Name: et.Name})
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return nil, domain.NewValidationError("expense type %q already exists", et.Name)
	}
	if err != nil {
		return nil, err
	}
	return &dto.ExpenseTypeRead{ID: et.ID, Name: et.Name}, nil
}

// SeedTypes inserts names when the catalogue is empty and reports how many
// were added. A populated catalogue is left alone.
func (s *Service) SeedTypes(ctx context.Context, names []string) (added int, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ExpenseTypeRepository()
		if err != nil {
			return err
		}
		count, err := repo.Count(ctx)
		if err != nil || count > 0 {
			return err
		}
		for _, name := range names {
			et, err := expense.NewType(name)
			if err != nil {
				return err
			}
			if err := repo.Create(ctx, dto.ExpenseTypeCreate{ID: et.ID, Name: et.Name}); err != nil {
				return err
			}
			added++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if added > 0 {
		s.logger.Info("Seeded expense types", "count", added)
	}
	return added, nil
}
