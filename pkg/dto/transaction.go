package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
)

// TransferCommand is the service input for moving money between accounts.
type TransferCommand struct {
	SenderEmail   string
	ReceiverEmail string
	Amount        money.Amount
	Category      string
	Description   string
	// Date defaults to now when zero.
	Date time.Time
}

// TransactionCreate is a DTO for persisting a completed transfer.
type TransactionCreate struct {
	ID            uuid.UUID
	SenderEmail   string
	ReceiverEmail string
	Amount        money.Amount
	Category      string
	Description   string
	Date          time.Time
	CreatedAt     time.Time
}

// TransactionRead is a read-optimized DTO for transaction queries and API responses.
type TransactionRead struct {
	ID            uuid.UUID
	SenderEmail   string
	ReceiverEmail string
	Amount        money.Amount
	Category      string
	Description   string
	Date          time.Time
	CreatedAt     time.Time
}
