package ledger_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
	"github.com/jhaabhiiishek/finmanBackend/webapi/common"
	"github.com/jhaabhiiishek/finmanBackend/webapi/ledger"
	"github.com/jhaabhiiishek/finmanBackend/webapi/testutils"
	"github.com/stretchr/testify/suite"
)

type LedgerTestSuite struct {
	testutils.E2ETestSuite
	alice, bob string
	token      string
}

func (s *LedgerTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.alice = s.CreateTestUser()
	s.bob = s.CreateTestUser()
	s.token = s.LoginUser(s.alice)
}

func (s *LedgerTestSuite) transferBody(from, to, amount string) string {
	return fmt.Sprintf(
		`{"senderEmail":"%s","receiverEmail":"%s","amount":%s,"category":"Food","description":"lunch","date":"2024-03-01"}`,
		from, to, amount,
	)
}

func (s *LedgerTestSuite) TestTransfer_Success() {
	resp := s.MakeRequest(fiber.MethodPost, "/transfer", s.transferBody(s.alice, s.bob, "200"), s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var out ledger.TransferResponse
	s.DecodeJSON(resp, &out)
	s.Equal("Transfer Successful", out.Message)
	s.Equal(money.MustParse("200"), out.Transaction.Amount)
	s.Equal("Food", out.Transaction.Category)

	s.Equal(money.MustParse("800"), s.Balance(s.alice))
	s.Equal(money.MustParse("1200"), s.Balance(s.bob))

	for _, email := range []string{s.alice, s.bob} {
		resp = s.MakeRequest(fiber.MethodPost, "/api/transactions", fmt.Sprintf(`{"email":"%s"}`, email), s.LoginUser(email))
		s.Require().Equal(fiber.StatusOK, resp.StatusCode)
		var list ledger.TransactionsResponse
		s.DecodeJSON(resp, &list)
		s.Require().Len(list.Transactions, 1)
		s.Equal(out.Transaction.ID, list.Transactions[0].ID)
	}
}

func (s *LedgerTestSuite) TestTransfer_DecimalStringAmount() {
	resp := s.MakeRequest(fiber.MethodPost, "/transfer", s.transferBody(s.alice, s.bob, `"0.10"`), s.token)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal(money.MustParse("999.90"), s.Balance(s.alice))
}

func (s *LedgerTestSuite) TestTransfer_LowBalance() {
	resp := s.MakeRequest(fiber.MethodPost, "/transfer", s.transferBody(s.alice, s.bob, "1000.01"), s.token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	var pd common.ProblemDetails
	s.DecodeJSON(resp, &pd)
	s.Equal("Transaction Failed - Low Balance", pd.Detail)
	s.Equal(money.MustParse("1000"), s.Balance(s.alice))
	s.Equal(money.MustParse("1000"), s.Balance(s.bob))
}

func (s *LedgerTestSuite) TestTransfer_UnknownReceiver() {
	resp := s.MakeRequest(fiber.MethodPost, "/transfer", s.transferBody(s.alice, "ghost@example.com", "10"), s.token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	var pd common.ProblemDetails
	s.DecodeJSON(resp, &pd)
	s.Equal("Receiver email isn't linked to an account", pd.Detail)
	s.Equal(money.MustParse("1000"), s.Balance(s.alice))
}

func (s *LedgerTestSuite) TestTransfer_Validation() {
	for _, body := range []string{
		s.transferBody(s.alice, s.bob, "0"),
		s.transferBody(s.alice, s.bob, "-5"),
		s.transferBody(s.alice, s.bob, "1.005"),
		s.transferBody(s.alice, s.alice, "5"),
		fmt.Sprintf(`{"senderEmail":"%s","receiverEmail":"%s"}`, s.alice, s.bob),
	} {
		resp := s.MakeRequest(fiber.MethodPost, "/transfer", body, s.token)
		s.Equal(fiber.StatusBadRequest, resp.StatusCode, body)
		_ = resp.Body.Close()
	}
}

func (s *LedgerTestSuite) TestTransfer_RequiresOwnership() {
	resp := s.MakeRequest(fiber.MethodPost, "/transfer", s.transferBody(s.bob, s.alice, "10"), s.token)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusForbidden, resp.StatusCode)
	s.Equal(money.MustParse("1000"), s.Balance(s.bob))
}

func (s *LedgerTestSuite) TestTransfer_RequiresToken() {
	resp := s.MakeRequest(fiber.MethodPost, "/transfer", s.transferBody(s.alice, s.bob, "10"), "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func (s *LedgerTestSuite) TestTransactions_OtherUserForbidden() {
	resp := s.MakeRequest(fiber.MethodPost, "/api/transactions", fmt.Sprintf(`{"email":"%s"}`, s.bob), s.token)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusForbidden, resp.StatusCode)
}

func (s *LedgerTestSuite) TestTransactions_AdminMayReadAny() {
	_, adminToken := s.CreateAdmin()
	resp := s.MakeRequest(fiber.MethodPost, "/api/transactions", fmt.Sprintf(`{"email":"%s"}`, s.bob), adminToken)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
}

func TestLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}
