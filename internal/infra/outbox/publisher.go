package outbox

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

var (
	ErrPublisherClosed = errors.New("publisher is closed")
	ErrEmptyKey        = errors.New("message key cannot be empty")
	ErrEmptyValue      = errors.New("message value cannot be empty")
)

const (
	HeaderEventType = "event-type"
	HeaderEventID   = "event-id"
	HeaderAttempt   = "attempt"
)

// Message is one outbox job ready for delivery.
type Message struct {
	Topic     string
	Key       string
	Value     []byte
	Headers   map[string]string
	Timestamp time.Time
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// LogPublisher writes events to the logger. It is used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, msg Message) error {
	if msg.Key == "" {
		return ErrEmptyKey
	}
	p.logger.InfoContext(ctx, "appointment event",
		slog.String("topic", msg.Topic),
		slog.String("event_type", msg.Headers[HeaderEventType]),
		slog.String("event_id", msg.Headers[HeaderEventID]),
		slog.String("key", msg.Key),
		slog.Int("bytes", len(msg.Value)))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
