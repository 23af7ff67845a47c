package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/account"
	authsvc "github.com/jhaabhiiishek/finmanBackend/pkg/service/auth"
)

// JwtProtected rejects requests without a valid bearer token and stores the
// parsed *jwt.Token under c.Locals("user").
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{
			JWTAlg: jwtware.HS256,
			Key:    []byte(cfg.Secret),
		},
		Claims:       &authsvc.Claims{},
		ErrorHandler: jwtError,
	})
}

// RequireRole must run after JwtProtected.
func RequireRole(role account.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing user context")
		}
		claims, ok := token.Claims.(*authsvc.Claims)
		if !ok || claims.Role != role {
			return fiber.NewError(fiber.StatusForbidden, "Requires "+string(role)+" role")
		}
		return c.Next()
	}
}

func jwtError(c *fiber.Ctx, err error) error {
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
		return fiber.NewError(fiber.StatusUnauthorized, "Missing or malformed JWT")
	}
	return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired JWT")
}
