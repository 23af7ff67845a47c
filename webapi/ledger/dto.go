package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
	"github.com/jhaabhiiishek/finmanBackend/webapi/common"
)

// TransferRequest represents the request body for moving money between accounts.
type TransferRequest struct {
	SenderEmail   string        `json:"senderEmail" validate:"required,email"`
	ReceiverEmail string        `json:"receiverEmail" validate:"required,email"`
	Amount        *money.Amount `json:"amount" validate:"required"`
	Category      string        `json:"category" validate:"max=50"`
	Description   string        `json:"description" validate:"max=500"`
	Date          common.Date   `json:"date" swaggertype:"string" example:"2024-05-06"`
}

// TransactionsRequest selects whose transactions to list.
type TransactionsRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type TransactionResponse struct {
	ID            uuid.UUID    `json:"id"`
	SenderEmail   string       `json:"senderEmail"`
	ReceiverEmail string       `json:"receiverEmail"`
	Amount        money.Amount `json:"amount" swaggertype:"number"`
	Category      string       `json:"category"`
	Description   string       `json:"description"`
	Date          time.Time    `json:"date"`
	CreatedAt     time.Time    `json:"createdAt"`
}

type TransferResponse struct {
	Message     string              `json:"message"`
	Transaction TransactionResponse `json:"transaction"`
}

type TransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

func toTransactionResponse(tx *dto.TransactionRead) TransactionResponse {
	return TransactionResponse{
		ID:            tx.ID,
		SenderEmail:   tx.SenderEmail,
		ReceiverEmail: tx.ReceiverEmail,
		Amount:        tx.Amount,
		Category:      tx.Category,
		Description:   tx.Description,
		Date:          tx.Date,
		CreatedAt:     tx.CreatedAt,
	}
}
