// Package events publishes placed shop orders to message brokers.
package events

//go:generate mockgen -source=kafka.go -destination=kafka_mock.go -package=events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/freelance-tracker/internal/logger"
	"github.com/sbilibin2017/freelance-tracker/internal/shop"
)

// EventOrderPlaced is the type header of order messages.
const EventOrderPlaced = "order.placed"

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaPublisher writes one message per order, keyed by order number.
type KafkaPublisher struct {
	writer KafkaWriter
}

// NewKafkaPublisher creates a publisher on top of writer.
func NewKafkaPublisher(writer KafkaWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// NewKafkaWriter returns a writer for topic hashing keys over partitions.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

// PublishOrder sends order as JSON.
func (p *KafkaPublisher) PublishOrder(ctx context.Context, order shop.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		logger.Log.Errorw("Failed to marshal order for Kafka", "order", order.Number, "error", err)
		return fmt.Errorf("marshal order: %w", err)
	}

	msg := kafka.Message{
		Key:     []byte(order.Number),
		Value:   data,
		Headers: []kafka.Header{{Key: "type", Value: []byte(EventOrderPlaced)}},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish order to Kafka", "order", order.Number, "error", err)
		return fmt.Errorf("publish order: %w", err)
	}

	logger.Log.Infow("Order published to Kafka", "order", order.Number, "total", order.Totals.TotalCents)
	return nil
}

// Close closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
