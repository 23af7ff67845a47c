// Package ledger holds the immutable record of completed transfers.
package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
	"github.com/jhaabhiiishek/finmanBackend/pkg/utils"
)

const (
	maxCategoryLength    = 50
	maxDescriptionLength = 500
)

// Transaction is a completed transfer between two accounts. It is never
// updated once written.
type Transaction struct {
	ID            uuid.UUID
	SenderEmail   string
	ReceiverEmail string
	Amount        money.Amount
	Category      string
	Description   string
	// Date is the user supplied date of the transfer.
	Date      time.Time
	CreatedAt time.Time
}

// NewTransfer validates a transfer request. A zero date means now.
func NewTransfer(
	sender, receiver string,
	amount money.Amount,
	category, description string,
	date time.Time,
) (*Transaction, error) {
	sender = utils.NormalizeEmail(sender)
	receiver = utils.NormalizeEmail(receiver)
	category = strings.TrimSpace(category)

	switch {
	case sender == "":
		return nil, domain.NewValidationError("sender email is required")
	case receiver == "":
		return nil, domain.NewValidationError("receiver email is required")
	case sender == receiver:
		return nil, domain.NewValidationError("cannot transfer to the same account")
	case !amount.IsPositive():
		return nil, domain.NewValidationError("amount must be positive")
	case len(category) > maxCategoryLength:
		return nil, domain.NewValidationError("category must be at most %d characters", maxCategoryLength)
	case len(description) > maxDescriptionLength:
		return nil, domain.NewValidationError("description must be at most %d characters", maxDescriptionLength)
	}

	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}
	return &Transaction{
		ID:            uuid.New(),
		SenderEmail:   sender,
		ReceiverEmail: receiver,
		Amount:        amount,
		Category:      category,
		Description:   description,
		Date:          date.UTC(),
		CreatedAt:     now,
	}, nil
}

// Involves reports whether email is the sender or the receiver.
func (t *Transaction) Involves(email string) bool {
	email = utils.NormalizeEmail(email)
	return t.SenderEmail == email || t.ReceiverEmail == email
}
