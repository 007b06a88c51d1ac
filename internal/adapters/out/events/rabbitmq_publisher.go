package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"logistics/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublishNacked = errors.New("publish NACK from broker")

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher publishes each event to a topic exchange and waits for
// the publisher confirm before sending the next one.
type RabbitMQPublisher struct {
	conn     *amqp.Connection
	ch       amqpChannel
	acks     <-chan amqp.Confirmation
	exchange string

	mu sync.Mutex
}

// DialRabbitMQPublisher connects to url, declares a durable topic exchange
// and puts the channel in confirm mode.
func DialRabbitMQPublisher(url, exchange string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq confirm mode: %w", err)
	}
	acks := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	return &RabbitMQPublisher{
		conn:     conn,
		ch:       ch,
		acks:     acks,
		exchange: exchange,
	}, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, events []ports.StatusEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, e := range events {
		body, err := encode(e)
		if err != nil {
			return fmt.Errorf("encode event %s: %w", e.ID, err)
		}

		err = p.ch.PublishWithContext(ctx, p.exchange, routingKey(e), false, false, amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  contentType,
			MessageId:    e.ID.String(),
			Timestamp:    e.ChangedAt,
			Body:         body,
		})
		if err != nil {
			return fmt.Errorf("rabbitmq publish: %w", err)
		}

		select {
		case conf, ok := <-p.acks:
			if !ok {
				return errors.New("rabbitmq confirm channel closed")
			}
			if !conf.Ack {
				return ErrPublishNacked
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	var err error
	if p.ch != nil {
		err = p.ch.Close()
	}
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
