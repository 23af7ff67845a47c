package account

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/account"
	"github.com/jhaabhiiishek/finmanBackend/pkg/middleware"
	accountsvc "github.com/jhaabhiiishek/finmanBackend/pkg/service/account"
	authsvc "github.com/jhaabhiiishek/finmanBackend/pkg/service/auth"
	"github.com/jhaabhiiishek/finmanBackend/webapi/common"
)

// Routes registers administrative account endpoints. They require the
// admin role.
func Routes(app *fiber.App, accountSvc *accountsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	app.Post(
		"/api/updateBalance",
		middleware.JwtProtected(cfg.Auth.Jwt),
		middleware.RequireRole(account.RoleAdmin),
		UpdateBalance(accountSvc, authSvc),
	)
}

// UpdateBalance overwrites an account balance outside the transfer rules.
// @Summary Override a balance
// @Description Admin only. Sets the balance of an account and records an audit event
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body UpdateBalanceRequest true "New balance"
// @Success 200 {object} common.MessageResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/updateBalance [post]
// @Security Bearer
func UpdateBalance(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateBalanceRequest](c)
		if input == nil {
			return err
		}
		actor, err := common.CurrentIdentity(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		if err := accountSvc.SetBalance(c.UserContext(), actor.Email, input.Email, *input.Balance); err != nil {
			return common.ProblemDetailsJSON(c, "Error updating balance", err)
		}
		return c.JSON(common.MessageResponse{Message: "Balance updated successfully"})
	}
}
