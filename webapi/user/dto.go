package user

import "github.com/jhaabhiiishek/finmanBackend/pkg/domain/account"

type Profile struct {
	Name  string `json:"name" validate:"max=100"`
	Email string `json:"email" validate:"required,email"`
}

// SettingsResponse is returned by GET /user/settings.
type SettingsResponse struct {
	Profile       Profile               `json:"profile"`
	Notifications account.Notifications `json:"notifications"`
}

// UpdateSettingsRequest replaces the profile name and notification flags.
type UpdateSettingsRequest struct {
	Profile       Profile               `json:"profile"`
	Notifications account.Notifications `json:"notifications"`
}

type ChangePasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

type DeleteAccountRequest struct {
	Email string `json:"email" validate:"required,email"`
}
