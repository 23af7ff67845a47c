package transaction

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
)

// Repository defines access to the append-only transaction log.
type Repository interface {
	// Create inserts a new transaction record from a DTO.
	Create(ctx context.Context, create dto.TransactionCreate) error

	// Get returns nil, nil when the transaction does not exist.
	Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error)

	// ListByEmail returns every transaction where email is the sender or the
	// receiver, newest date first.
	ListByEmail(ctx context.Context, email string) ([]*dto.TransactionRead, error)
}
