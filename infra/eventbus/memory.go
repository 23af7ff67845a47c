package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/events"
	"github.com/jhaabhiiishek/finmanBackend/pkg/eventbus"
)

// MemoryEventBus dispatches events synchronously to handlers in the same
// process. The redis and kafka buses embed it for local dispatch.
type MemoryEventBus struct {
	handlers  map[string][]eventbus.HandlerFunc
	mu        sync.RWMutex
	logger    *slog.Logger
	record    bool
	published []events.Event
}

// NewWithMemory creates a new in-memory event bus.
func NewWithMemory(logger *slog.Logger) *MemoryEventBus {
	return &MemoryEventBus{
		handlers: make(map[string][]eventbus.HandlerFunc),
		logger:   logger.With("bus", "memory"),
	}
}

// NewRecordingMemory creates an in-memory bus that also keeps every emitted
// event for Published. It is meant for tests.
func NewRecordingMemory(logger *slog.Logger) *MemoryEventBus {
	b := NewWithMemory(logger)
	b.record = true
	return b
}

// Register registers a handler for a specific event type.
func (b *MemoryEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit runs every handler registered for the event type. A failing handler
// is logged and does not stop the others.
func (b *MemoryEventBus) Emit(ctx context.Context, event events.Event) error {
	b.mu.Lock()
	if b.record {
		b.published = append(b.published, event)
	}
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[event.Type()]...)
	b.mu.Unlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			b.logger.Error("event handler failed", "type", event.Type(), "key", event.Key(), "error", err)
		}
	}
	return nil
}

// Published returns the events emitted so far. It is always empty unless
// the bus was built with NewRecordingMemory.
func (b *MemoryEventBus) Published() []events.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]events.Event(nil), b.published...)
}

// ClearPublished clears the list of published events.
func (b *MemoryEventBus) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = nil
}

func (b *MemoryEventBus) Close() error { return nil }

var _ eventbus.Bus = (*MemoryEventBus)(nil)
