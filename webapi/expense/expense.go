package expense

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
	"github.com/jhaabhiiishek/finmanBackend/pkg/middleware"
	authsvc "github.com/jhaabhiiishek/finmanBackend/pkg/service/auth"
	expensesvc "github.com/jhaabhiiishek/finmanBackend/pkg/service/expense"
	"github.com/jhaabhiiishek/finmanBackend/webapi/common"
)

// Routes registers expense bookkeeping endpoints.
//
// Routes:
//   - POST /api/expenses       : List the caller's expenses.
//   - POST /api/add-expense    : Record an expense.
//   - GET  /api/expense-types  : List expense types (public).
//   - POST /api/expense-types  : Add an expense type.
func Routes(app *fiber.App, expenseSvc *expensesvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Post("/api/expenses", protected, ListExpenses(expenseSvc, authSvc))
	app.Post("/api/add-expense", protected, AddExpense(expenseSvc, authSvc))
	app.Get("/api/expense-types", ListExpenseTypes(expenseSvc))
	app.Post("/api/expense-types", protected, AddExpenseType(expenseSvc))
}

// ListExpenses returns the caller's expenses, newest first.
// @Summary List expenses
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body ListExpensesRequest true "Owner"
// @Success 200 {object} ExpensesResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/expenses [post]
// @Security Bearer
func ListExpenses(expenseSvc *expensesvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ListExpensesRequest](c)
		if input == nil {
			return err
		}
		if _, err := common.Authorize(c, authSvc, input.UserEmail); err != nil {
			return common.ProblemDetailsJSON(c, "Error fetching expenses", err)
		}
		list, err := expenseSvc.ListExpenses(c.UserContext(), input.UserEmail)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Error fetching expenses", err)
		}
		out := make([]ExpenseResponse, 0, len(list))
		for _, e := range list {
			out = append(out, toExpenseResponse(e))
		}
		return c.JSON(ExpensesResponse{Expenses: out})
	}
}

// AddExpense records an expense for the caller.
// @Summary Add expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body AddExpenseRequest true "Expense"
// @Success 201 {object} common.MessageResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/add-expense [post]
// @Security Bearer
func AddExpense(expenseSvc *expensesvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AddExpenseRequest](c)
		if input == nil {
			return err
		}
		if _, err := common.Authorize(c, authSvc, input.UserEmail); err != nil {
			return common.ProblemDetailsJSON(c, "Error saving expense", err)
		}
		_, err = expenseSvc.AddExpense(c.UserContext(), dto.ExpenseCommand{
			UserEmail:   input.UserEmail,
			ExpenseType: input.ExpenseType,
			Recipient:   input.Recipient,
			Amount:      *input.Amount,
			Remarks:     input.Remarks,
			Date:        input.Date.Time,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Error saving expense", err)
		}
		return c.Status(fiber.StatusCreated).JSON(common.MessageResponse{Message: "Expense saved successfully!"})
	}
}

// ListExpenseTypes returns every expense type ordered by name.
// @Summary List expense types
// @Tags expenses
// @Produce json
// @Success 200 {array} ExpenseTypeResponse
// @Failure 500 {object} common.ProblemDetails
// @Router /api/expense-types [get]
func ListExpenseTypes(expenseSvc *expensesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		types, err := expenseSvc.ListTypes(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Server Error", err)
		}
		out := make([]ExpenseTypeResponse, 0, len(types))
		for _, t := range types {
			out = append(out, ExpenseTypeResponse{ID: t.ID, Name: t.Name})
		}
		return c.JSON(out)
	}
}

// AddExpenseType adds a new expense type.
// @Summary Add expense type
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body AddExpenseTypeRequest true "Type name"
// @Success 201 {object} ExpenseTypeResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/expense-types [post]
// @Security Bearer
func AddExpenseType(expenseSvc *expensesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AddExpenseTypeRequest](c)
		if input == nil {
			return err
		}
		t, err := expenseSvc.AddType(c.UserContext(), input.Name)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not save expense type", err)
		}
		return c.Status(fiber.StatusCreated).JSON(ExpenseTypeResponse{ID: t.ID, Name: t.Name})
	}
}
