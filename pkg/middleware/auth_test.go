package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/account"
	authsvc "github.com/jhaabhiiishek/finmanBackend/pkg/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwt = &config.Jwt{Secret: "middleware-secret", Expiry: time.Hour}

func signed(t *testing.T, role account.Role, secret string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &authsvc.Claims{
		UID:  uuid.NewString(),
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice@example.com",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers = append(handlers, func(c *fiber.Ctx) error {
		token := c.Locals("user").(*jwt.Token)
		return c.SendString(token.Claims.(*authsvc.Claims).Subject)
	})
	app.Get("/", handlers...)
	return app
}

func do(t *testing.T, app *fiber.App, bearer string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestJwtProtected(t *testing.T) {
	app := newApp(JwtProtected(testJwt))
	hour := time.Now().Add(time.Hour)

	tests := []struct {
		name   string
		bearer string
		want   int
	}{
		{"missing", "", fiber.StatusUnauthorized},
		{"garbage", "not-a-token", fiber.StatusUnauthorized},
		{"wrong secret", signed(t, account.RoleUser, "other", hour), fiber.StatusUnauthorized},
		{"expired", signed(t, account.RoleUser, testJwt.Secret, time.Now().Add(-time.Minute)), fiber.StatusUnauthorized},
		{"valid", signed(t, account.RoleUser, testJwt.Secret, hour), fiber.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, do(t, app, tc.bearer).StatusCode)
		})
	}
}

func TestRequireRole(t *testing.T) {
	app := newApp(JwtProtected(testJwt), RequireRole(account.RoleAdmin))
	hour := time.Now().Add(time.Hour)

	assert.Equal(t, fiber.StatusForbidden, do(t, app, signed(t, account.RoleUser, testJwt.Secret, hour)).StatusCode)
	assert.Equal(t, fiber.StatusOK, do(t, app, signed(t, account.RoleAdmin, testJwt.Secret, hour)).StatusCode)
}

func TestJwtError(t *testing.T) {
	app := fiber.New()
	app.Get("/missing", func(c *fiber.Ctx) error { return jwtError(c, jwtware.ErrJWTMissingOrMalformed) })
	app.Get("/other", func(c *fiber.Ctx) error { return jwtError(c, errors.New("token is expired")) })

	for _, path := range []string{"/missing", "/other"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}
}
