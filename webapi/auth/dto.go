package auth

import (
	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/account"
	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
)

// SignupInput represents the request body for registration.
type SignupInput struct {
	Name     string `json:"name" validate:"max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginInput represents the request body for user authentication.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	Balance       money.Amount          `json:"balance"`
	Role          account.Role          `json:"role"`
	Notifications account.Notifications `json:"notifications"`
	Transactions  []uuid.UUID           `json:"transactions"`
}

// LoginResponse carries the bearer token and the logged-in account.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func toUserResponse(a *dto.AccountRead) UserResponse {
	txs := a.TransactionIDs
	if txs == nil {
		txs = []uuid.UUID{}
	}
	return UserResponse{
		ID:            a.ID,
		Name:          a.Name,
		Email:         a.Email,
		Balance:       a.Balance,
		Role:          a.Role,
		Notifications: a.Notifications,
		Transactions:  txs,
	}
}
