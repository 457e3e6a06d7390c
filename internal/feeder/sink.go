package feeder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/thermora/backend/internal/domain"
)

// Batch is one tick worth of readings
type Batch struct {
	ID        string
	CreatedAt time.Time
	Readings  []domain.Reading
}

// Sink receives every batch the feeder produces
type Sink interface {
	Name() string
	Publish(ctx context.Context, b Batch) error
	Close() error
}

// StoreSink saves batches into a reading store
type StoreSink struct {
	store domain.ReadingStore
}

// NewStoreSink creates a sink writing to store
func NewStoreSink(store domain.ReadingStore) *StoreSink {
	return &StoreSink{store: store}
}

func (s *StoreSink) Name() string { return "store" }

// Publish saves the batch readings
func (s *StoreSink) Publish(ctx context.Context, b Batch) error {
	if err := s.store.SaveReadings(ctx, b.Readings); err != nil {
		return fmt.Errorf("feeder: failed to store batch %s: %w", b.ID, err)
	}
	return nil
}

func (s *StoreSink) Close() error { return nil }

// MessageWriter is the part of *kafka.Writer the sink uses
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// BatchIDHeader carries the batch id on every Kafka message
const BatchIDHeader = "batch-id"

// KafkaSink publishes one JSON message per reading, keyed by device id so a
// device's readings stay ordered within a partition
type KafkaSink struct {
	writer MessageWriter
}

// NewKafkaWriter builds a synchronous writer hashing keys to partitions
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
}

// NewKafkaSink creates a sink over w
func NewKafkaSink(w MessageWriter) *KafkaSink {
	return &KafkaSink{writer: w}
}

func (s *KafkaSink) Name() string { return "kafka" }

// Publish writes the batch in a single WriteMessages call
func (s *KafkaSink) Publish(ctx context.Context, b Batch) error {
	msgs := make([]kafka.Message, 0, len(b.Readings))
	for _, r := range b.Readings {
		value, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("feeder: failed to encode reading: %w", err)
		}
		msgs = append(msgs, kafka.Message{
			Key:     []byte(r.DeviceID),
			Value:   value,
			Time:    r.Timestamp,
			Headers: []kafka.Header{{Key: BatchIDHeader, Value: []byte(b.ID)}},
		})
	}

	if err := s.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("feeder: failed to publish batch %s: %w", b.ID, err)
	}
	return nil
}

// Close flushes and closes the writer
func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
