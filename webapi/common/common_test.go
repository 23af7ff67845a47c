package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.NewValidationError("bad"), fiber.StatusBadRequest},
		{domain.ErrUnknownAccount, fiber.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", domain.ErrInsufficientFunds), fiber.StatusBadRequest},
		{domain.ErrDuplicateAccount, fiber.StatusConflict},
		{domain.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{domain.ErrForbidden, fiber.StatusForbidden},
		{domain.ErrAccountNotFound, fiber.StatusNotFound},
		{fiber.NewError(fiber.StatusTeapot, "tea"), fiber.StatusTeapot},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ErrorToStatusCode(tc.err), tc.err.Error())
	}
}

func problem(t *testing.T, handler fiber.Handler) (int, ProblemDetails) {
	t.Helper()
	app := fiber.New()
	app.Post("/x", handler)
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var pd ProblemDetails
	require.NoError(t, json.Unmarshal(body, &pd))
	return resp.StatusCode, pd
}

func TestProblemDetailsJSON_HidesInternalErrors(t *testing.T) {
	status, pd := problem(t, func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Internal Server Error", errors.New("pq: password authentication failed"))
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, genericDetail, pd.Detail)
	assert.Equal(t, "/x", pd.Instance)
}

func TestProblemDetailsJSON_Overrides(t *testing.T) {
	status, pd := problem(t, func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Transaction Failed", domain.ErrInsufficientFunds, "Transaction Failed - Low Balance")
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Transaction Failed - Low Balance", pd.Detail)

	status, pd = problem(t, func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Nope", nil, fiber.StatusTooManyRequests)
	})
	assert.Equal(t, fiber.StatusTooManyRequests, status)
	assert.Equal(t, "Nope", pd.Title)
}

type bindInput struct {
	Email  string        `json:"email" validate:"required,email"`
	Amount *money.Amount `json:"amount" validate:"required"`
	Date   Date          `json:"date"`
}

func bind(t *testing.T, body string) (int, *bindInput) {
	t.Helper()
	var got *bindInput
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		input, err := BindAndValidate[bindInput](c)
		if input == nil {
			return err
		}
		got = input
		return c.SendStatus(fiber.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp.StatusCode, got
}

func TestBindAndValidate(t *testing.T) {
	status, got := bind(t, `{"email":"a@example.com","amount":"12.5","date":"2024-05-06"}`)
	require.Equal(t, fiber.StatusNoContent, status)
	assert.Equal(t, money.MustParse("12.50"), *got.Amount)
	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), got.Date.Time)

	status, got = bind(t, `{"email":"a@example.com","amount":3,"date":"2024-05-06T10:00:00+02:00"}`)
	require.Equal(t, fiber.StatusNoContent, status)
	assert.Equal(t, time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC), got.Date.Time)

	for _, body := range []string{
		`{"email":"a@example.com"}`,
		`{"email":"nope","amount":1}`,
		`{"email":"a@example.com","amount":1.001}`,
		`{"email":"a@example.com","amount":1,"date":"06/05/2024"}`,
		`not json`,
	} {
		status, _ := bind(t, body)
		assert.Equal(t, fiber.StatusBadRequest, status, body)
	}
}
