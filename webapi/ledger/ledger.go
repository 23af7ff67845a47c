package ledger

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain"
	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
	"github.com/jhaabhiiishek/finmanBackend/pkg/middleware"
	authsvc "github.com/jhaabhiiishek/finmanBackend/pkg/service/auth"
	ledgersvc "github.com/jhaabhiiishek/finmanBackend/pkg/service/ledger"
	"github.com/jhaabhiiishek/finmanBackend/webapi/common"
)

// Routes registers the transfer endpoints. Both require a bearer token and
// act only on the caller's own account unless the caller is an admin.
//
// Routes:
//   - POST /transfer          : Move money from the caller to another account.
//   - POST /api/transactions  : List the caller's transactions, newest first.
func Routes(app *fiber.App, ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	app.Post("/transfer", middleware.JwtProtected(cfg.Auth.Jwt), Transfer(ledgerSvc, authSvc))
	app.Post("/api/transactions", middleware.JwtProtected(cfg.Auth.Jwt), ListTransactions(ledgerSvc, authSvc))
}

// Transfer moves money between two accounts atomically.
// @Summary Transfer money
// @Description Debits the sender and credits the receiver in one transaction
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Transfer details"
// @Success 200 {object} TransferResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /transfer [post]
// @Security Bearer
func Transfer(ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err
		}
		if _, err := common.Authorize(c, authSvc, input.SenderEmail); err != nil {
			return common.ProblemDetailsJSON(c, "Transfer Failed", err)
		}
		tx, err := ledgerSvc.Transfer(c.UserContext(), dto.TransferCommand{
			SenderEmail:   input.SenderEmail,
			ReceiverEmail: input.ReceiverEmail,
			Amount:        *input.Amount,
			Category:      input.Category,
			Description:   input.Description,
			Date:          input.Date.Time,
		})
		switch {
		case errors.Is(err, domain.ErrUnknownAccount):
			return common.ProblemDetailsJSON(c, "Transfer Failed", err, "Receiver email isn't linked to an account")
		case errors.Is(err, domain.ErrInsufficientFunds):
			return common.ProblemDetailsJSON(c, "Transfer Failed", err, "Transaction Failed - Low Balance")
		case err != nil:
			return common.ProblemDetailsJSON(c, "Transfer Failed", err)
		}
		return c.JSON(TransferResponse{
			Message:     "Transfer Successful",
			Transaction: toTransactionResponse(tx),
		})
	}
}

// ListTransactions returns every transfer the account sent or received.
// @Summary List transactions
// @Description Newest first, by transfer date
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body TransactionsRequest true "Account email"
// @Success 200 {object} TransactionsResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/transactions [post]
// @Security Bearer
func ListTransactions(ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransactionsRequest](c)
		if input == nil {
			return err
		}
		if _, err := common.Authorize(c, authSvc, input.Email); err != nil {
			return common.ProblemDetailsJSON(c, "Error fetching transactions", err)
		}
		txs, err := ledgerSvc.ListTransactions(c.UserContext(), input.Email)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Error fetching transactions", err)
		}
		out := make([]TransactionResponse, 0, len(txs))
		for _, tx := range txs {
			out = append(out, toTransactionResponse(tx))
		}
		return c.JSON(TransactionsResponse{Transactions: out})
	}
}
