package events

//go:generate mockgen -source=amqp.go -destination=amqp_mock.go -package=events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/sbilibin2017/freelance-tracker/internal/logger"
	"github.com/sbilibin2017/freelance-tracker/internal/shop"
)

const publishTimeout = 5 * time.Second

// AMQPChannel is the part of an AMQP channel used for publishing.
type AMQPChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// AMQPPublisher publishes orders to a direct exchange with the queue name as routing key.
type AMQPPublisher struct {
	conn     *amqp091.Connection
	channel  AMQPChannel
	exchange string
	queue    string
	now      func() time.Time
}

// NewAMQPPublisher wraps an already configured channel.
func NewAMQPPublisher(channel AMQPChannel, exchange, queue string) *AMQPPublisher {
	return &AMQPPublisher{
		channel:  channel,
		exchange: exchange,
		queue:    queue,
		now:      time.Now,
	}
}

// DialAMQP connects to url and declares the exchange, the queue and their binding.
func DialAMQP(url, exchange, queue string) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declare(channel, exchange, queue); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	p := NewAMQPPublisher(channel, exchange, queue)
	p.conn = conn
	return p, nil
}

func declare(ch *amqp091.Channel, exchange, queue string) error {
	if err := ch.ExchangeDeclare(
		exchange, // name
		"direct", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(queue, queue, exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// PublishOrder sends order as a persistent JSON message.
func (p *AMQPPublisher) PublishOrder(ctx context.Context, order shop.Order) error {
	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange, // exchange
		p.queue,    // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    order.Number,
			Type:         EventOrderPlaced,
			Timestamp:    p.now(),
			Body:         body,
		},
	)
	if err != nil {
		logger.Log.Errorw("Failed to publish order to AMQP", "order", order.Number, "error", err)
		return fmt.Errorf("publish message: %w", err)
	}

	logger.Log.Infow("Order published to AMQP",
		"order", order.Number,
		"exchange", p.exchange,
		"queue", p.queue)
	return nil
}

// Close closes the channel and, when dialed, the connection.
func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
