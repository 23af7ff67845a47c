package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/account"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
)

// AccountCreate represents the data needed to create a new account.
type AccountCreate struct {
	ID             uuid.UUID
	Name           string
	Email          string
	HashedPassword string
	Balance        money.Amount
	Role           account.Role
	Notifications  account.Notifications
}

// AccountUpdate holds the profile fields that may change. Nil fields are
// left untouched. Balance is not here: it only moves through the conditional
// repository operations.
type AccountUpdate struct {
	Name           *string
	HashedPassword *string
	Role           *account.Role
	Notifications  *account.Notifications
}

// AccountRead represents a read-optimized view of an account.
type AccountRead struct {
	ID             uuid.UUID
	Name           string
	Email          string
	HashedPassword string
	Balance        money.Amount
	Role           account.Role
	Notifications  account.Notifications
	// TransactionIDs lists the transfers the account took part in, oldest first.
	TransactionIDs []uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (a *AccountRead) IsAdmin() bool { return a.Role == account.RoleAdmin }

// AccountSettings is the user-editable part of an account.
type AccountSettings struct {
	Email         string
	Name          string
	Notifications account.Notifications
}
