package eventbus

import (
	"context"

	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/events"
)

// HandlerFunc reacts to a published event.
type HandlerFunc func(ctx context.Context, event events.Event) error

// Bus publishes events after the changes they describe have committed.
type Bus interface {
	// Emit publishes the event and runs the handlers registered for its type.
	Emit(ctx context.Context, event events.Event) error
	// Register adds a handler for an event type.
	Register(eventType string, handler HandlerFunc)
	// Close releases any connection held by the bus.
	Close() error
}
