// Package testutils provides an HTTP test suite running the full route
// tree against a private sqlite database.
package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/pkg/app"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
	"github.com/jhaabhiiishek/finmanBackend/pkg/testutils"
	"github.com/jhaabhiiishek/finmanBackend/webapi"
	"github.com/stretchr/testify/suite"
)

// E2ETestSuite boots the whole application for each test.
type E2ETestSuite struct {
	suite.Suite
	Env *testutils.Env
	App *app.App

	fiber *fiber.App
}

// SetupTest gives every test a fresh database so tests stay independent.
func (s *E2ETestSuite) SetupTest() {
	s.Env = testutils.NewEnv(s.T())
	s.App = app.New(s.Env.Deps)
	s.fiber = webapi.SetupApp(s.App)
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.fiber.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// DecodeJSON reads and closes the response body into out.
func (s *E2ETestSuite) DecodeJSON(resp *http.Response, out any) {
	defer resp.Body.Close() //nolint: errcheck
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
}

// ReadBody reads and closes the response body.
func (s *E2ETestSuite) ReadBody(resp *http.Response) string {
	defer resp.Body.Close() //nolint: errcheck
	b, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return string(b)
}

// CreateTestUser signs up a unique user through POST /signup and returns its email.
func (s *E2ETestSuite) CreateTestUser() string {
	email := fmt.Sprintf("test_%s@example.com", uuid.NewString()[:8])
	body := fmt.Sprintf(`{"name":"Test User","email":"%s","password":"%s"}`, email, testutils.TestPassword)
	resp := s.MakeRequest(fiber.MethodPost, "/signup", body, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode, s.ReadBody(resp))
	return email
}

// LoginUser logs in through POST /login and returns the bearer token.
func (s *E2ETestSuite) LoginUser(email string) string {
	body := fmt.Sprintf(`{"email":"%s","password":"%s"}`, email, testutils.TestPassword)
	resp := s.MakeRequest(fiber.MethodPost, "/login", body, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
	}
	s.DecodeJSON(resp, &out)
	s.Require().NotEmpty(out.Token)
	return out.Token
}

// CreateAdmin registers a user, promotes it and returns its email and token.
func (s *E2ETestSuite) CreateAdmin() (string, string) {
	email := s.CreateTestUser()
	s.Require().NoError(s.App.AccountService.Promote(context.Background(), email))
	return email, s.LoginUser(email)
}

// Balance reads a balance straight from the database.
func (s *E2ETestSuite) Balance(email string) money.Amount {
	return s.Env.Balance(s.T(), email)
}
