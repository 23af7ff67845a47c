// Package events defines the audit events published after ledger changes
// commit.
package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
)

const (
	AccountRegisteredType = "account.registered"
	TransferCompletedType = "ledger.transfer_completed"
	BalanceOverriddenType = "account.balance_overridden"
	AccountDeletedType    = "account.deleted"
)

// Event is implemented by every published event.
type Event interface {
	Type() string
	// Key groups events of the same account, used for stream partitioning.
	Key() string
}

// Meta is embedded by every event.
type Meta struct {
	ID         uuid.UUID `json:"id"`
	OccurredAt time.Time `json:"occurredAt"`
}

func newMeta() Meta {
	return Meta{ID: uuid.New(), OccurredAt: time.Now().UTC()}
}

type AccountRegistered struct {
	Meta
	AccountID      uuid.UUID    `json:"accountId"`
	Email          string       `json:"email"`
	InitialBalance money.Amount `json:"initialBalance"`
}

func NewAccountRegistered(accountID uuid.UUID, email string, balance money.Amount) *AccountRegistered {
	return &AccountRegistered{Meta: newMeta(), AccountID: accountID, Email: email, InitialBalance: balance}
}

func (e AccountRegistered) Type() string { return AccountRegisteredType }
func (e AccountRegistered) Key() string  { return e.Email }

type TransferCompleted struct {
	Meta
	TransactionID uuid.UUID    `json:"transactionId"`
	SenderEmail   string       `json:"senderEmail"`
	ReceiverEmail string       `json:"receiverEmail"`
	Amount        money.Amount `json:"amount"`
	Category      string       `json:"category,omitempty"`
}

func NewTransferCompleted(
	transactionID uuid.UUID,
	sender, receiver string,
	amount money.Amount,
	category string,
) *TransferCompleted {
	return &TransferCompleted{
		Meta:          newMeta(),
		TransactionID: transactionID,
		SenderEmail:   sender,
		ReceiverEmail: receiver,
		Amount:        amount,
		Category:      category,
	}
}

func (e TransferCompleted) Type() string { return TransferCompletedType }
func (e TransferCompleted) Key() string  { return e.SenderEmail }

// BalanceOverridden records an administrative balance change, which bypasses
// the transfer rules.
type BalanceOverridden struct {
	Meta
	Email           string       `json:"email"`
	PreviousBalance money.Amount `json:"previousBalance"`
	NewBalance      money.Amount `json:"newBalance"`
	Actor           string       `json:"actor"`
}

func NewBalanceOverridden(email string, previous, balance money.Amount, actor string) *BalanceOverridden {
	return &BalanceOverridden{
		Meta:            newMeta(),
		Email:           email,
		PreviousBalance: previous,
		NewBalance:      balance,
		Actor:           actor,
	}
}

func (e BalanceOverridden) Type() string { return BalanceOverriddenType }
func (e BalanceOverridden) Key() string  { return e.Email }

type AccountDeleted struct {
	Meta
	AccountID uuid.UUID `json:"accountId"`
	Email     string    `json:"email"`
}

func NewAccountDeleted(accountID uuid.UUID, email string) *AccountDeleted {
	return &AccountDeleted{Meta: newMeta(), AccountID: accountID, Email: email}
}

func (e AccountDeleted) Type() string { return AccountDeletedType }
func (e AccountDeleted) Key() string  { return e.Email }
