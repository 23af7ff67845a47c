// Package webapi wires the HTTP routes of the finman backend. Routes live in
// sub-packages by domain:
//   - auth: signup and login
//   - ledger: transfers and transaction history
//   - account: administrative balance overrides
//   - user: settings, password and account deletion
//   - expense: expense records and expense types
package webapi

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/swagger"
	"github.com/jhaabhiiishek/finmanBackend/pkg/app"
	accountweb "github.com/jhaabhiiishek/finmanBackend/webapi/account"
	authweb "github.com/jhaabhiiishek/finmanBackend/webapi/auth"
	"github.com/jhaabhiiishek/finmanBackend/webapi/common"
	expenseweb "github.com/jhaabhiiishek/finmanBackend/webapi/expense"
	ledgerweb "github.com/jhaabhiiishek/finmanBackend/webapi/ledger"
	userweb "github.com/jhaabhiiishek/finmanBackend/webapi/user"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	cfg := a.Config

	fiberApp := fiber.New(fiber.Config{
		AppName: "finman",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return common.ProblemDetailsJSON(c, utils.StatusMessage(fe.Code), err)
			}
			a.Deps.Logger.Error("Unhandled request error", "path", c.Path(), "error", err)
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))

	// Uses X-Forwarded-For when behind a proxy, then X-Real-IP, then the peer address.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				nil,
				"Rate limit exceeded",
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	if cfg.Env != "test" {
		fiberApp.Use(logger.New())
	}

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("finman API is running")
	})
	fiberApp.Get("/health", Health(a.Deps.Ping))

	authweb.Routes(fiberApp, a.AccountService, a.AuthService)
	ledgerweb.Routes(fiberApp, a.LedgerService, a.AuthService, cfg)
	accountweb.Routes(fiberApp, a.AccountService, a.AuthService, cfg)
	userweb.Routes(fiberApp, a.AccountService, a.AuthService, cfg)
	expenseweb.Routes(fiberApp, a.ExpenseService, a.AuthService, cfg)
	return fiberApp
}

// Health reports whether the database answers a ping.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} common.ProblemDetails
// @Router /health [get]
func Health(ping func(ctx context.Context) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				return common.ProblemDetailsJSON(c, "Service Unavailable", nil, "database unreachable", fiber.StatusServiceUnavailable)
			}
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
