package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain"
	accountsvc "github.com/jhaabhiiishek/finmanBackend/pkg/service/account"
	authsvc "github.com/jhaabhiiishek/finmanBackend/pkg/service/auth"
	"github.com/jhaabhiiishek/finmanBackend/webapi/common"
)

// Routes registers the public registration and login endpoints.
func Routes(app *fiber.App, accountSvc *accountsvc.Service, authSvc *authsvc.Service) {
	app.Post("/signup", Signup(accountSvc))
	app.Post("/login", Login(authSvc))
}

// Signup registers a new account funded with the initial grant.
// @Summary Register a new account
// @Description Creates an account with the configured starting balance
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupInput true "Registration details"
// @Success 200 {object} common.MessageResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /signup [post]
func Signup(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SignupInput](c)
		if input == nil {
			return err
		}
		_, err = accountSvc.Register(c.UserContext(), input.Name, input.Email, input.Password)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateAccount) {
				return common.ProblemDetailsJSON(c, "Registration failed", err, "Email is already registered")
			}
			return common.ProblemDetailsJSON(c, "Error signing up", err)
		}
		return c.JSON(common.MessageResponse{Message: "User Registered!"})
	}
}

// Login handles user authentication and returns a JWT token.
// @Summary User login
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}
		a, token, err := authSvc.Authenticate(c.UserContext(), input.Email, input.Password)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) {
				return common.ProblemDetailsJSON(c, "Invalid credentials", err, "Email or password is incorrect")
			}
			return common.ProblemDetailsJSON(c, "Error logging in", err)
		}
		return c.JSON(LoginResponse{Token: token, User: toUserResponse(a)})
	}
}
