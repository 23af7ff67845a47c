// Command kafka_smoketest publishes a transfer event through the kafka event
// bus and reads it back, to check a local broker end to end.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	infra_eventbus "github.com/jhaabhiiishek/finmanBackend/infra/eventbus"
	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/events"
	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
	"github.com/segmentio/kafka-go"
)

// RunSmokeTest emits one event and consumes it from its topic.
func RunSmokeTest(ctx context.Context, logger *slog.Logger) error {
	brokers := strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))
	if brokers == "" {
		brokers = "localhost:9092"
	}
	cfg := &config.Kafka{
		Brokers:     strings.Split(brokers, ","),
		TopicPrefix: "finman-smoke",
		Timeout:     5 * time.Second,
	}

	bus, err := infra_eventbus.NewWithKafka(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = bus.Close() }()

	evt := events.NewTransferCompleted(uuid.New(), "smoke-a@example.com", "smoke-b@example.com", money.MustParse("1.00"), "smoke")
	if err := bus.Emit(ctx, evt); err != nil {
		return err
	}
	topic := bus.Topic(evt.Type())
	logger.Info("produced", "topic", topic, "event_id", evt.ID)

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		GroupID:     "finman-smoke-" + uuid.NewString()[:8],
		Topic:       topic,
		StartOffset: kafka.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
		MaxWait:     500 * time.Millisecond,
	})
	defer func() { _ = r.Close() }()

	for {
		msg, err := r.FetchMessage(ctx)
		if err != nil {
			return fmt.Errorf("fetch from %s: %w", topic, err)
		}
		var env struct {
			Type    string                   `json:"type"`
			Payload events.TransferCompleted `json:"payload"`
		}
		if err := json.Unmarshal(msg.Value, &env); err != nil {
			return fmt.Errorf("decode envelope: %w", err)
		}
		_ = r.CommitMessages(ctx, msg)
		if env.Payload.ID == evt.ID {
			logger.Info("consumed", "topic", topic, "type", env.Type, "offset", msg.Offset)
			return nil
		}
	}
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := RunSmokeTest(ctx, logger); err != nil {
		logger.Error("kafka smoke test failed", "error", err)
		os.Exit(1)
	}
	logger.Info("kafka smoke test passed")
}
