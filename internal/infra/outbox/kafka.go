package outbox

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"showroom-scheduler/internal/pkg/config"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
)

// KafkaPublisher sends each event to the topic stored with its job, or the
// configured topic when the job has none. Messages are keyed by appointment id
// so events of one appointment keep their order within a partition.
type KafkaPublisher struct {
	writer       *kafka.Writer
	defaultTopic string
	mu           sync.RWMutex
	closed       bool
}

func NewKafkaPublisher(cfg config.EventsConfig, logger *slog.Logger) (*KafkaPublisher, error) {
	if len(cfg.KafkaBrokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if cfg.KafkaTopic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Compression:  compressionFor(cfg.KafkaCompression),
		MaxAttempts:  3,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			logger.Error(fmt.Sprintf("kafka writer: "+msg, args...))
		}),
	}

	return &KafkaPublisher{writer: writer, defaultTopic: cfg.KafkaTopic}, nil
}

func compressionFor(name string) compress.Compression {
	switch name {
	case "gzip":
		return compress.Gzip
	case "lz4":
		return compress.Lz4
	case "zstd":
		return compress.Zstd
	case "none":
		return 0
	default:
		return compress.Snappy
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, msg Message) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}
	if msg.Key == "" {
		return ErrEmptyKey
	}
	if len(msg.Value) == 0 {
		return ErrEmptyValue
	}

	return p.writer.WriteMessages(ctx, p.toKafkaMessage(msg))
}

// The writer has no topic of its own, so every message must name one.
func (p *KafkaPublisher) toKafkaMessage(msg Message) kafka.Message {
	topic := msg.Topic
	if topic == "" {
		topic = p.defaultTopic
	}
	kafkaMsg := kafka.Message{
		Topic: topic,
		Key:   []byte(msg.Key),
		Value: msg.Value,
		Time:  msg.Timestamp,
	}
	for k, v := range msg.Headers {
		kafkaMsg.Headers = append(kafkaMsg.Headers, kafka.Header{Key: k, Value: []byte(v)})
	}
	return kafkaMsg
}

func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}
