// Package common holds the request and response plumbing shared by the
// route packages: problem+json errors, body binding and caller identity.
package common

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain"
	authsvc "github.com/jhaabhiiishek/finmanBackend/pkg/service/auth"
)

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

// MessageResponse is the body of endpoints that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}

const genericDetail = "An unexpected error occurred"

// ProblemDetailsJSON writes err as application/problem+json. The status is
// derived from err unless an int is passed in args; a string in args
// replaces the detail. Internal errors never leak their text.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, args ...any) error {
	status := fiber.StatusBadRequest
	if err != nil {
		status = ErrorToStatusCode(err)
	}
	detail := ""
	for _, arg := range args {
		switch v := arg.(type) {
		case int:
			status = v
		case string:
			detail = v
		}
	}
	if detail == "" && err != nil {
		if status >= fiber.StatusInternalServerError {
			detail = genericDetail
		} else {
			detail = errorDetail(err)
		}
	}

	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(pd)
}

func errorDetail(err error) string {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Message
	}
	return err.Error()
}

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnknownAccount),
		errors.Is(err, domain.ErrInsufficientFunds):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// BindAndValidate parses the request body and validates it using go-playground/validator.
// Returns a pointer to the struct (populated), or writes an error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", nil, err.Error(), fiber.StatusBadRequest)
	}
	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, ProblemDetailsJSON(c, "Validation failed", nil, describe(verrs), fiber.StatusBadRequest)
		}
		return nil, ProblemDetailsJSON(c, "Validation failed", nil, err.Error(), fiber.StatusBadRequest)
	}
	return &input, nil
}

func describe(verrs validator.ValidationErrors) string {
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// CurrentIdentity returns the caller of a JwtProtected route.
func CurrentIdentity(c *fiber.Ctx, authSvc *authsvc.Service) (authsvc.Identity, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return authsvc.Identity{}, fmt.Errorf("missing user context: %w", domain.ErrUnauthorized)
	}
	return authSvc.CurrentIdentity(token)
}

// Authorize resolves the caller and checks that they may act on email.
func Authorize(c *fiber.Ctx, authSvc *authsvc.Service, email string) (authsvc.Identity, error) {
	id, err := CurrentIdentity(c, authSvc)
	if err != nil {
		return id, err
	}
	if !id.CanActOn(email) {
		return id, fmt.Errorf("cannot act on another user's account: %w", domain.ErrForbidden)
	}
	return id, nil
}
