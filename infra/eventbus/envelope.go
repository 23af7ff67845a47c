package eventbus

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/events"
)

// envelope is the wire form shared by the redis and kafka sinks.
type envelope struct {
	Type       string          `json:"type"`
	Key        string          `json:"key"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

func buildEnvelope(event events.Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal event %s: %w", event.Type(), err)
	}
	env := envelope{
		Type:       event.Type(),
		Key:        event.Key(),
		OccurredAt: time.Now().UTC(),
		Payload:    data,
	}
	out, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal envelope %s: %w", event.Type(), err)
	}
	return out, nil
}
