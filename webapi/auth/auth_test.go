package auth_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
	"github.com/jhaabhiiishek/finmanBackend/webapi/auth"
	"github.com/jhaabhiiishek/finmanBackend/webapi/common"
	"github.com/jhaabhiiishek/finmanBackend/webapi/testutils"
	"github.com/stretchr/testify/suite"
)

type AuthTestSuite struct {
	testutils.E2ETestSuite
}

func (s *AuthTestSuite) TestSignup_Success() {
	resp := s.MakeRequest(fiber.MethodPost, "/signup", `{"name":"Alice","email":"alice@example.com","password":"password123"}`, "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var out common.MessageResponse
	s.DecodeJSON(resp, &out)
	s.Equal("User Registered!", out.Message)
	s.Equal(money.MustParse("1000"), s.Balance("alice@example.com"))
}

func (s *AuthTestSuite) TestSignup_Duplicate() {
	email := s.CreateTestUser()
	resp := s.MakeRequest(fiber.MethodPost, "/signup", fmt.Sprintf(`{"name":"Again","email":"%s","password":"x"}`, email), "")
	s.Equal(fiber.StatusConflict, resp.StatusCode)
	var pd common.ProblemDetails
	s.DecodeJSON(resp, &pd)
	s.Equal("Email is already registered", pd.Detail)
}

func (s *AuthTestSuite) TestSignup_BadRequest() {
	for _, body := range []string{
		`{"name":"A","password":"x"}`,
		`{"name":"A","email":"not-an-email","password":"x"}`,
		`{"name":"A","email":"a@example.com"}`,
		`{"email":123}`,
	} {
		resp := s.MakeRequest(fiber.MethodPost, "/signup", body, "")
		s.Equal(fiber.StatusBadRequest, resp.StatusCode, body)
		_ = resp.Body.Close()
	}
}

func (s *AuthTestSuite) TestLogin_Success() {
	email := s.CreateTestUser()
	resp := s.MakeRequest(fiber.MethodPost, "/login", fmt.Sprintf(`{"email":"%s","password":"password123"}`, email), "")
	s.Equal(fiber.StatusOK, resp.StatusCode)

	var out auth.LoginResponse
	s.DecodeJSON(resp, &out)
	s.NotEmpty(out.Token)
	s.Equal(email, out.User.Email)
	s.Equal(money.MustParse("1000"), out.User.Balance)
	s.Empty(out.User.Transactions)
}

func (s *AuthTestSuite) TestLogin_Unauthorized() {
	email := s.CreateTestUser()
	for _, body := range []string{
		fmt.Sprintf(`{"email":"%s","password":"wrong"}`, email),
		`{"email":"nobody@example.com","password":"password123"}`,
	} {
		resp := s.MakeRequest(fiber.MethodPost, "/login", body, "")
		s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
		var pd common.ProblemDetails
		s.DecodeJSON(resp, &pd)
		s.Equal("Email or password is incorrect", pd.Detail)
	}
}

func (s *AuthTestSuite) TestLogin_BadRequest() {
	resp := s.MakeRequest(fiber.MethodPost, "/login", `{"email":123}`, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
