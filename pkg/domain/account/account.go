package account

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
	"github.com/jhaabhiiishek/finmanBackend/pkg/utils"
)

// Role decides which operations an account may perform on other accounts.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool { return r == RoleUser || r == RoleAdmin }

const maxNameLength = 100

// Notifications are the per-channel notification preferences of an account.
type Notifications struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	SMS   bool `json:"sms"`
}

// DefaultNotifications is applied to new accounts.
var DefaultNotifications = Notifications{Email: true}

// Account is a registered user together with their single balance.
//
// Balance is signed. Transfers never take it below zero, but an admin
// override may set any value.
type Account struct {
	ID             uuid.UUID
	Name           string
	Email          string
	HashedPassword string
	Balance        money.Amount
	Role           Role
	Notifications  Notifications
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// New validates registration input and returns an account funded with grant.
func New(name, email, password string, grant money.Amount) (*Account, error) {
	email = utils.NormalizeEmail(email)
	name = strings.TrimSpace(name)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if grant < 0 {
		return nil, domain.NewValidationError("initial balance cannot be negative")
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Account{
		ID:             uuid.New(),
		Name:           name,
		Email:          email,
		HashedPassword: hashed,
		Balance:        grant,
		Role:           RoleUser,
		Notifications:  DefaultNotifications,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func ValidateEmail(email string) error {
	if email == "" {
		return domain.NewValidationError("email is required")
	}
	if !utils.IsEmail(email) {
		return domain.NewValidationError("email is not valid")
	}
	return nil
}

func ValidateName(name string) error {
	if len([]rune(name)) > maxNameLength {
		return domain.NewValidationError("name must be at most %d characters", maxNameLength)
	}
	return nil
}

func ValidatePassword(password string) error {
	if password == "" {
		return domain.NewValidationError("password is required")
	}
	if len(password) > utils.MaxPasswordLength {
		return domain.NewValidationError("password must be at most %d bytes", utils.MaxPasswordLength)
	}
	return nil
}

