// Package events forwards ledger change notifications to an AMQP exchange so
// that other services can refresh their views of a member.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/ledger"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// Publisher publishes ledger events to a topic exchange.
type Publisher struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	exchange   string
	routingKey string
}

// NewPublisher connects to the broker at url and declares the exchange.
func NewPublisher(url, exchange, routingKey string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p := &Publisher{
		conn:       conn,
		channel:    channel,
		exchange:   exchange,
		routingKey: routingKey,
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return p, nil
}

// RoutingKey returns the key an event is published with,
// "<routing key>.<event kind>".
func RoutingKey(base string, e ledger.Event) string {
	return fmt.Sprintf("%s.%s", base, e.Kind)
}

// Publish sends one event as a persistent JSON message.
func (p *Publisher) Publish(ctx context.Context, e ledger.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,                  // exchange
		RoutingKey(p.routingKey, e), // routing key
		false,                       // mandatory
		false,                       // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    e.At,
			Type:         string(e.Kind),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	log.Debug().
		Str("kind", string(e.Kind)).
		Str("member", e.MemberID.String()).
		Str("exchange", p.exchange).
		Msg("published ledger event")

	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}

	if p.conn != nil {
		return p.conn.Close()
	}

	return nil
}
