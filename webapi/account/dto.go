package account

import "github.com/jhaabhiiishek/finmanBackend/pkg/money"

// UpdateBalanceRequest overwrites the balance of an account.
type UpdateBalanceRequest struct {
	Email   string        `json:"email" validate:"required,email"`
	Balance *money.Amount `json:"balance" validate:"required" swaggertype:"number"`
}
