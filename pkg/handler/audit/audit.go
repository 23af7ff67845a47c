// Package audit turns published domain events into structured log records.
package audit

import (
	"context"
	"log/slog"

	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/events"
	"github.com/jhaabhiiishek/finmanBackend/pkg/eventbus"
)

// Handle returns a handler that logs every event it receives.
func Handle(logger *slog.Logger) eventbus.HandlerFunc {
	log := logger.With("handler", "audit")
	return func(ctx context.Context, e events.Event) error {
		attrs := []any{"type", e.Type(), "key", e.Key()}
		switch ev := e.(type) {
		case *events.AccountRegistered:
			attrs = append(attrs, "event_id", ev.ID, "account_id", ev.AccountID, "balance", ev.InitialBalance)
		case *events.TransferCompleted:
			attrs = append(attrs,
				"event_id", ev.ID,
				"transaction_id", ev.TransactionID,
				"receiver", ev.ReceiverEmail,
				"amount", ev.Amount,
			)
		case *events.BalanceOverridden:
			attrs = append(attrs,
				"event_id", ev.ID,
				"previous", ev.PreviousBalance,
				"balance", ev.NewBalance,
				"actor", ev.Actor,
			)
		case *events.AccountDeleted:
			attrs = append(attrs, "event_id", ev.ID, "account_id", ev.AccountID)
		}
		log.InfoContext(ctx, "audit", attrs...)
		return nil
	}
}
