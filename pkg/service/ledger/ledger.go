// Package ledger moves money between accounts and reads the transfer log.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/events"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/ledger"
	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
	"github.com/jhaabhiiishek/finmanBackend/pkg/eventbus"
	"github.com/jhaabhiiishek/finmanBackend/pkg/repository"
	"github.com/jhaabhiiishek/finmanBackend/pkg/utils"
)

type Service struct {
	uow      repository.UnitOfWork
	eventBus eventbus.Bus
	logger   *slog.Logger
}

func NewService(deps config.Deps) *Service {
	return &Service{
		uow:      deps.Uow,
		eventBus: deps.EventBus,
		logger:   deps.Logger,
	}
}

// Transfer moves cmd.Amount from the sender to the receiver and records the
// transaction on both accounts. Either every write commits or none does.
//
// Both account rows are locked in email order before the debit, so transfers
// in opposite directions queue instead of deadlocking. The debit is still a
// conditional update and can never take the balance below zero.
func (s *Service) Transfer(
	ctx context.Context,
	cmd dto.TransferCommand,
) (tx *dto.TransactionRead, err error) {
	log := s.logger.With(
		"context", "Transfer",
		"sender", cmd.SenderEmail,
		"receiver", cmd.ReceiverEmail,
		"amount", cmd.Amount,
	)
	t, err := ledger.NewTransfer(
		cmd.SenderEmail,
		cmd.ReceiverEmail,
		cmd.Amount,
		cmd.Category,
		cmd.Description,
		cmd.Date,
	)
	if err != nil {
		log.Warn("Transfer rejected", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		transactions, err := uow.TransactionRepository()
		if err != nil {
			return err
		}

		locked, err := accounts.LockByEmails(ctx, t.SenderEmail, t.ReceiverEmail)
		if err != nil {
			return err
		}
		var sender, receiver *dto.AccountRead
		for _, a := range locked {
			switch a.Email {
			case t.SenderEmail:
				sender = a
			case t.ReceiverEmail:
				receiver = a
			}
		}
		if sender == nil || receiver == nil {
			return domain.ErrUnknownAccount
		}
		if sender.Balance < t.Amount {
			return domain.ErrInsufficientFunds
		}

		debited, err := accounts.Debit(ctx, t.SenderEmail, t.Amount)
		if err != nil {
			return fmt.Errorf("debit sender: %w", err)
		}
		if !debited {
			// the balance moved since it was read
			return domain.ErrInsufficientFunds
		}
		credited, err := accounts.Credit(ctx, t.ReceiverEmail, t.Amount)
		if err != nil {
			return fmt.Errorf("credit receiver: %w", err)
		}
		if !credited {
			return domain.ErrUnknownAccount
		}

		if err := transactions.Create(ctx, dto.TransactionCreate{
			ID:            t.ID,
			SenderEmail:   t.SenderEmail,
			ReceiverEmail: t.ReceiverEmail,
			Amount:        t.Amount,
			Category:      t.Category,
			Description:   t.Description,
			Date:          t.Date,
			CreatedAt:     t.CreatedAt,
		}); err != nil {
			return fmt.Errorf("record transaction: %w", err)
		}
		if err := accounts.LinkTransaction(ctx, sender.ID, t.ID); err != nil {
			return fmt.Errorf("link sender: %w", err)
		}
		if err := accounts.LinkTransaction(ctx, receiver.ID, t.ID); err != nil {
			return fmt.Errorf("link receiver: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Warn("Transfer failed", "error", err)
		return nil, err
	}
	log.Info("Transfer completed", "transactionID", t.ID)

	if s.eventBus != nil {
		event := events.NewTransferCompleted(t.ID, t.SenderEmail, t.ReceiverEmail, t.Amount, t.Category)
		if err := s.eventBus.Emit(ctx, event); err != nil {
			log.Error("Failed to publish event", "type", event.Type(), "error", err)
		}
	}

	return &dto.TransactionRead{
		ID:            t.ID,
		SenderEmail:   t.SenderEmail,
		ReceiverEmail: t.ReceiverEmail,
		Amount:        t.Amount,
		Category:      t.Category,
		Description:   t.Description,
		Date:          t.Date,
		CreatedAt:     t.CreatedAt,
	}, nil
}

// ListTransactions returns the transactions email sent or received, newest first.
func (s *Service) ListTransactions(
	ctx context.Context,
	email string,
) (txs []*dto.TransactionRead, err error) {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return nil, domain.NewValidationError("email is required")
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		txs, err = repo.ListByEmail(ctx, email)
		return err
	})
	if err != nil {
		s.logger.Error("ListTransactions failed", "email", email, "error", err)
		return nil, err
	}
	return txs, nil
}
