// Package account manages the lifecycle of ledger accounts: registration,
// profile settings, password changes, administrative balance overrides and
// deletion.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/account"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/events"
	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
	"github.com/jhaabhiiishek/finmanBackend/pkg/eventbus"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
	"github.com/jhaabhiiishek/finmanBackend/pkg/repository"
	"github.com/jhaabhiiishek/finmanBackend/pkg/utils"
)

// Service provides account operations. Every operation runs in its own
// unit of work and publishes its domain event after commit.
type Service struct {
	uow      repository.UnitOfWork
	eventBus eventbus.Bus
	logger   *slog.Logger
	grant    money.Amount
}

// NewService creates a new Service with the provided dependencies.
func NewService(deps config.Deps) *Service {
	s := &Service{
		uow:      deps.Uow,
		eventBus: deps.EventBus,
		logger:   deps.Logger,
	}
	if deps.Config != nil && deps.Config.Ledger != nil {
		grant, err := deps.Config.Ledger.Grant()
		if err != nil {
			deps.Logger.Error("Invalid initial grant, new accounts start empty", "error", err)
		}
		s.grant = grant
	}
	return s
}

// Register creates an account funded with the configured initial grant.
func (s *Service) Register(
	ctx context.Context,
	name, email, password string,
) (a *dto.AccountRead, err error) {
	log := s.logger.With("context", "Register")
	acc, err := account.New(name, email, password, s.grant)
	if err != nil {
		return nil, err
	}
	log = log.With("email", acc.Email)

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		exists, err := repo.ExistsByEmail(ctx, acc.Email)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicateAccount
		}
		return repo.Create(ctx, dto.AccountCreate{
			ID:             acc.ID,
			Name:           acc.Name,
			Email:          acc.Email,
			HashedPassword: acc.HashedPassword,
			Balance:        acc.Balance,
			Role:           acc.Role,
			Notifications:  acc.Notifications,
		})
	})
	if err != nil {
		// a concurrent signup can slip past the existence check
		if errors.Is(err, domain.ErrAlreadyExists) {
			err = domain.ErrDuplicateAccount
		}
		log.Warn("Register failed", "error", err)
		return nil, err
	}
	log.Info("Account registered", "accountID", acc.ID)
	s.emit(ctx, events.NewAccountRegistered(acc.ID, acc.Email, acc.Balance))

	return &dto.AccountRead{
		ID:            acc.ID,
		Name:          acc.Name,
		Email:         acc.Email,
		Balance:       acc.Balance,
		Role:          acc.Role,
		Notifications: acc.Notifications,
		CreatedAt:     acc.CreatedAt,
		UpdatedAt:     acc.UpdatedAt,
	}, nil
}

// Get returns the account registered under email.
func (s *Service) Get(ctx context.Context, email string) (a *dto.AccountRead, err error) {
	email = utils.NormalizeEmail(email)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err = repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if a == nil {
			return domain.ErrAccountNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetSettings returns the profile and notification preferences of an account.
func (s *Service) GetSettings(ctx context.Context, email string) (*dto.AccountSettings, error) {
	a, err := s.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	return &dto.AccountSettings{
		Email:         a.Email,
		Name:          a.Name,
		Notifications: a.Notifications,
	}, nil
}

// UpdateSettings replaces the name and notification preferences of an account.
func (s *Service) UpdateSettings(ctx context.Context, settings dto.AccountSettings) error {
	email := utils.NormalizeEmail(settings.Email)
	if err := account.ValidateName(settings.Name); err != nil {
		return err
	}
	return s.update(ctx, email, dto.AccountUpdate{
		Name:          &settings.Name,
		Notifications: &settings.Notifications,
	})
}

// ChangePassword stores a new bcrypt hash for the account.
func (s *Service) ChangePassword(ctx context.Context, email, password string) error {
	email = utils.NormalizeEmail(email)
	if err := account.ValidatePassword(password); err != nil {
		return err
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.update(ctx, email, dto.AccountUpdate{HashedPassword: &hashed})
}

// Promote grants the admin role.
func (s *Service) Promote(ctx context.Context, email string) error {
	role := account.RoleAdmin
	return s.update(ctx, utils.NormalizeEmail(email), dto.AccountUpdate{Role: &role})
}

func (s *Service) update(ctx context.Context, email string, update dto.AccountUpdate) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		return repo.Update(ctx, email, update)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrAccountNotFound
	}
	if err != nil {
		s.logger.Error("Account update failed", "email", email, "error", err)
	}
	return err
}

// SetBalance overwrites a balance outside the transfer rules. actor is the
// email of whoever requested the change and is recorded on the event.
func (s *Service) SetBalance(
	ctx context.Context,
	actor, email string,
	balance money.Amount,
) error {
	log := s.logger.With("context", "SetBalance", "email", email, "actor", actor)
	email = utils.NormalizeEmail(email)

	var previous money.Amount
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		locked, err := repo.LockByEmails(ctx, email)
		if err != nil {
			return err
		}
		if len(locked) == 0 {
			return domain.ErrAccountNotFound
		}
		previous = locked[0].Balance
		ok, err := repo.SetBalance(ctx, email, balance)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrAccountNotFound
		}
		return nil
	})
	if err != nil {
		log.Warn("SetBalance failed", "error", err)
		return err
	}
	log.Info("Balance overridden", "previous", previous, "balance", balance)
	s.emit(ctx, events.NewBalanceOverridden(email, previous, balance, actor))
	return nil
}

// Delete removes the account and its transaction links. Transactions and
// expenses stay.
func (s *Service) Delete(ctx context.Context, email string) error {
	log := s.logger.With("context", "Delete", "email", email)
	email = utils.NormalizeEmail(email)

	var a *dto.AccountRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err = repo.FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		if a == nil {
			return domain.ErrAccountNotFound
		}
		ok, err := repo.Delete(ctx, email)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrAccountNotFound
		}
		return nil
	})
	if err != nil {
		log.Warn("Delete failed", "error", err)
		return err
	}
	log.Info("Account deleted", "accountID", a.ID)
	s.emit(ctx, events.NewAccountDeleted(a.ID, email))
	return nil
}

// emit publishes after commit. The change is already durable, so a failed
// publish is logged and not returned.
func (s *Service) emit(ctx context.Context, event events.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Emit(ctx, event); err != nil {
		s.logger.Error("Failed to publish event", "type", event.Type(), "error", err)
	}
}
