package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
	"github.com/jhaabhiiishek/finmanBackend/pkg/middleware"
	accountsvc "github.com/jhaabhiiishek/finmanBackend/pkg/service/account"
	authsvc "github.com/jhaabhiiishek/finmanBackend/pkg/service/auth"
	"github.com/jhaabhiiishek/finmanBackend/webapi/common"
)

// Routes registers the self-service account endpoints under /user.
//
// Routes:
//   - GET    /user/settings?email=   : Profile and notification preferences.
//   - PUT    /user/settings          : Replace name and notification preferences.
//   - PUT    /user/change-password   : Store a new password.
//   - DELETE /user/delete-account    : Delete the account. Transactions and expenses stay.
func Routes(app *fiber.App, accountSvc *accountsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	user := app.Group("/user", middleware.JwtProtected(cfg.Auth.Jwt))
	user.Get("/settings", GetSettings(accountSvc, authSvc))
	user.Put("/settings", UpdateSettings(accountSvc, authSvc))
	user.Put("/change-password", ChangePassword(accountSvc, authSvc))
	user.Delete("/delete-account", DeleteAccount(accountSvc, authSvc))
}

// GetSettings returns the caller's profile and notification preferences.
// @Summary Get settings
// @Tags users
// @Produce json
// @Param email query string false "Account email, defaults to the caller"
// @Success 200 {object} SettingsResponse
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /user/settings [get]
// @Security Bearer
func GetSettings(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.CurrentIdentity(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		email := c.Query("email", id.Email)
		if _, err := common.Authorize(c, authSvc, email); err != nil {
			return common.ProblemDetailsJSON(c, "Error fetching user settings", err)
		}
		settings, err := accountSvc.GetSettings(c.UserContext(), email)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Error fetching user settings", err)
		}
		return c.JSON(SettingsResponse{
			Profile:       Profile{Name: settings.Name, Email: settings.Email},
			Notifications: settings.Notifications,
		})
	}
}

// UpdateSettings replaces the caller's name and notification preferences.
// @Summary Update settings
// @Tags users
// @Accept json
// @Produce plain
// @Param request body UpdateSettingsRequest true "New settings"
// @Success 200 {string} string "Settings updated"
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /user/settings [put]
// @Security Bearer
func UpdateSettings(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateSettingsRequest](c)
		if input == nil {
			return err
		}
		if _, err := common.Authorize(c, authSvc, input.Profile.Email); err != nil {
			return common.ProblemDetailsJSON(c, "Error updating settings", err)
		}
		err = accountSvc.UpdateSettings(c.UserContext(), dto.AccountSettings{
			Email:         input.Profile.Email,
			Name:          input.Profile.Name,
			Notifications: input.Notifications,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Error updating settings", err)
		}
		return c.SendString("Settings updated")
	}
}

// ChangePassword stores a new password for the caller.
// @Summary Change password
// @Tags users
// @Accept json
// @Produce plain
// @Param request body ChangePasswordRequest true "New password"
// @Success 200 {string} string "Password updated"
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /user/change-password [put]
// @Security Bearer
func ChangePassword(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ChangePasswordRequest](c)
		if input == nil {
			return err
		}
		if _, err := common.Authorize(c, authSvc, input.Email); err != nil {
			return common.ProblemDetailsJSON(c, "Error changing password", err)
		}
		if err := accountSvc.ChangePassword(c.UserContext(), input.Email, input.Password); err != nil {
			return common.ProblemDetailsJSON(c, "Error changing password", err)
		}
		return c.SendString("Password updated")
	}
}

// DeleteAccount removes the caller's account. Transactions and expenses are kept.
// @Summary Delete account
// @Tags users
// @Accept json
// @Produce plain
// @Param request body DeleteAccountRequest true "Account to delete"
// @Success 200 {string} string "Account deleted"
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /user/delete-account [delete]
// @Security Bearer
func DeleteAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[DeleteAccountRequest](c)
		if input == nil {
			return err
		}
		if _, err := common.Authorize(c, authSvc, input.Email); err != nil {
			return common.ProblemDetailsJSON(c, "Error deleting account", err)
		}
		if err := accountSvc.Delete(c.UserContext(), input.Email); err != nil {
			return common.ProblemDetailsJSON(c, "Error deleting account", err)
		}
		return c.SendString("Account deleted")
	}
}
