package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/jhaabhiiishek/finmanBackend/webapi/testutils"
	"github.com/stretchr/testify/suite"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

type MainTestSuite struct {
	testutils.E2ETestSuite
}

func TestMainTestSuite(t *testing.T) {
	suite.Run(t, new(MainTestSuite))
}

func (s *MainTestSuite) TestRootRoute() {
	resp := s.MakeRequest(http.MethodGet, "/", "", "")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("finman API is running", s.ReadBody(resp))
}

func (s *MainTestSuite) TestProtectedRoute_Unauthorized() {
	resp := s.MakeRequest(http.MethodPost, "/api/transactions", `{"email":"a@example.com"}`, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *MainTestSuite) TestNotFoundRoute() {
	resp := s.MakeRequest(http.MethodGet, "/doesnotexist", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *MainTestSuite) TestLoginRoute_BadRequest() {
	resp := s.MakeRequest(http.MethodPost, "/login", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *MainTestSuite) TestRun_MissingSecret() {
	s.T().Setenv("AUTH_JWT_SECRET", "")
	err := run(context.Background())
	s.Require().Error(err)
	s.Contains(err.Error(), "configuration")
}
