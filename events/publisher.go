package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const orderQueue = "orders.placed"

// Publisher pushes order events onto the orders queue. Checkout treats
// publish failures as non-fatal; the order itself is already committed.
type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher declares the orders queue on a fresh channel.
func NewPublisher(conn *amqp.Connection) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(orderQueue, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue %s: %w", orderQueue, err)
	}
	return &Publisher{ch: ch}, nil
}

func (p *Publisher) PublishOrderPlaced(evt OrderPlaced) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.ch.PublishWithContext(ctx,
		"",         // exchange
		orderQueue, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("publish order event: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}
