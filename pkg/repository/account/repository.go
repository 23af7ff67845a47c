package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
)

// Repository defines account data access. Balance changes are conditional
// single statements so they stay correct under concurrent transfers.
type Repository interface {
	// Create inserts a new account. A taken email yields domain.ErrAlreadyExists.
	Create(ctx context.Context, create dto.AccountCreate) error

	// GetByEmail returns the account with its transaction history, or nil,
	// nil when no account is registered under email.
	GetByEmail(ctx context.Context, email string) (*dto.AccountRead, error)

	// FindByEmail is GetByEmail without the transaction history.
	FindByEmail(ctx context.Context, email string) (*dto.AccountRead, error)

	// LockByEmails loads the known accounts among emails, ordered by email,
	// and locks their rows until the surrounding transaction ends.
	LockByEmails(ctx context.Context, emails ...string) ([]*dto.AccountRead, error)

	// ExistsByEmail checks if an account with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update applies the non-nil fields. Returns domain.ErrNotFound for an unknown email.
	Update(ctx context.Context, email string, update dto.AccountUpdate) error

	// Debit subtracts amount only if the balance covers it. It reports
	// whether a row changed; false means unknown email or insufficient funds.
	Debit(ctx context.Context, email string, amount money.Amount) (bool, error)

	// Credit adds amount. It reports false for an unknown email.
	Credit(ctx context.Context, email string, amount money.Amount) (bool, error)

	// SetBalance overwrites the balance. It reports false for an unknown email.
	SetBalance(ctx context.Context, email string, balance money.Amount) (bool, error)

	// LinkTransaction appends a transaction to the account's history.
	LinkTransaction(ctx context.Context, accountID, transactionID uuid.UUID) error

	// Delete removes the account and its transaction links. It reports
	// false for an unknown email.
	Delete(ctx context.Context, email string) (bool, error)
}
