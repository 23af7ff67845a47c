package app

import (
	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/jhaabhiiishek/finmanBackend/pkg/service/account"
	"github.com/jhaabhiiishek/finmanBackend/pkg/service/auth"
	"github.com/jhaabhiiishek/finmanBackend/pkg/service/expense"
	"github.com/jhaabhiiishek/finmanBackend/pkg/service/ledger"
)

// App holds the services built on top of the shared dependencies.
type App struct {
	Deps           config.Deps
	Config         *config.App
	AuthService    *auth.Service
	AccountService *account.Service
	LedgerService  *ledger.Service
	ExpenseService *expense.Service
}

// New builds every service and registers the event handlers on the bus.
func New(deps config.Deps) *App {
	app := &App{
		Deps:   deps,
		Config: deps.Config,
	}
	app.setupEventBus()

	app.AuthService = auth.NewWithJWT(deps.Uow, deps.Config.Auth.Jwt, deps.Logger)
	app.AccountService = account.NewService(deps)
	app.LedgerService = ledger.NewService(deps)
	app.ExpenseService = expense.NewService(deps)
	return app
}
