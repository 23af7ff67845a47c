package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/events"
	"github.com/jhaabhiiishek/finmanBackend/pkg/eventbus"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the bus uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaEventBus writes every event to a topic named after its type, keyed by
// account so one account's events stay ordered, then dispatches locally.
type KafkaEventBus struct {
	*MemoryEventBus
	writer      messageWriter
	topicPrefix string
	logger      *slog.Logger
}

// NewWithKafka creates a kafka-backed bus for cfg.Brokers.
func NewWithKafka(cfg *config.Kafka, logger *slog.Logger) (*KafkaEventBus, error) {
	if cfg == nil || len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka event bus: brokers are required")
	}
	brokers := make([]string, 0, len(cfg.Brokers))
	for _, b := range cfg.Brokers {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka event bus: brokers are required")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           cfg.Timeout,
	}
	return newKafkaEventBus(writer, cfg.TopicPrefix, logger), nil
}

func newKafkaEventBus(writer messageWriter, topicPrefix string, logger *slog.Logger) *KafkaEventBus {
	return &KafkaEventBus{
		MemoryEventBus: NewWithMemory(logger),
		writer:         writer,
		topicPrefix:    topicPrefix,
		logger:         logger.With("bus", "kafka"),
	}
}

func topicNameFor(prefix, eventType string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "finman"
	}
	return fmt.Sprintf("%s.%s", prefix, strings.ToLower(eventType))
}

// Topic returns the topic events of eventType are written to.
func (b *KafkaEventBus) Topic(eventType string) string {
	return topicNameFor(b.topicPrefix, eventType)
}

// Emit writes the event to its topic, then runs local handlers.
func (b *KafkaEventBus) Emit(ctx context.Context, event events.Event) error {
	payload, err := buildEnvelope(event)
	if err != nil {
		return fmt.Errorf("kafka event bus: %w", err)
	}

	msg := kafka.Message{
		Topic: b.Topic(event.Type()),
		Key:   []byte(event.Key()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type())},
		},
	}
	if err := b.writer.WriteMessages(ctx, msg); err != nil {
		b.logger.Error("failed to emit event", "type", event.Type(), "topic", msg.Topic, "error", err)
		_ = b.MemoryEventBus.Emit(ctx, event)
		return fmt.Errorf("kafka event bus: emit failed: %w", err)
	}
	b.logger.Debug("event emitted", "type", event.Type(), "topic", msg.Topic)

	return b.MemoryEventBus.Emit(ctx, event)
}

func (b *KafkaEventBus) Close() error {
	return b.writer.Close()
}

var _ eventbus.Bus = (*KafkaEventBus)(nil)
