package app

import (
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/events"
	"github.com/jhaabhiiishek/finmanBackend/pkg/handler/audit"
)

// setupEventBus registers the handlers every published event flows through.
func (a *App) setupEventBus() {
	if a.Deps.EventBus == nil {
		return
	}
	auditHandler := audit.Handle(a.Deps.Logger)
	for _, eventType := range []string{
		events.AccountRegisteredType,
		events.TransferCompletedType,
		events.BalanceOverriddenType,
		events.AccountDeletedType,
	} {
		a.Deps.EventBus.Register(eventType, auditHandler)
	}
}
