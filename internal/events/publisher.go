package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/project/library/internal/usecase/outbox"
	"github.com/project/library/internal/usecase/repository"
	"github.com/project/library/pkg/logger"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	exchangeType = "topic"
	contentType  = "application/json"
)

var ErrNoRoutingKey = errors.New("event name is missing in payload")

// Channel is the part of *amqp.Channel the publisher talks to.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	conn     *amqp.Connection
	channel  Channel
	exchange string
	logger   *zap.Logger
	now      func() time.Time
}

// NewPublisher dials the broker and declares a durable topic exchange.
func NewPublisher(url, exchange string, logger *zap.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("can not connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can not open channel: %w", err)
	}

	err = channel.ExchangeDeclare(exchange, exchangeType, true, false, false, false, nil)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("can not declare exchange %s: %w", exchange, err)
	}

	publisher := NewChannelPublisher(channel, exchange, logger)
	publisher.conn = conn

	return publisher, nil
}

func NewChannelPublisher(channel Channel, exchange string, logger *zap.Logger) *Publisher {
	return &Publisher{
		channel:  channel,
		exchange: exchange,
		logger:   logger,
		now:      time.Now,
	}
}

// GlobalHandler routes rental and book outbox rows to the exchange.
// The routing key is the event name carried in the payload.
func (p *Publisher) GlobalHandler() outbox.GlobalHandler {
	return func(kind repository.OutboxKind) (outbox.KindHandler, error) {
		switch kind {
		case repository.OutboxKindRental, repository.OutboxKindBook:
			return p.publish, nil
		default:
			return nil, fmt.Errorf("unsupported outbox kind: %d", kind)
		}
	}
}

func (p *Publisher) publish(ctx context.Context, data []byte) error {
	routingKey := jsoniter.Get(data, "event").ToString()
	if routingKey == "" {
		return ErrNoRoutingKey
	}

	messageID := uuid.NewString()
	err := p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  contentType,
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now(),
		MessageId:    messageID,
		Body:         data,
	})
	if logger.CheckError(err, p.logger, "can not publish event",
		zap.String("routing_key", routingKey), zap.Error(err)) {
		return fmt.Errorf("can not publish %s: %w", routingKey, err)
	}

	logger.MakeInfo(p.logger, "event published",
		zap.String("routing_key", routingKey),
		zap.String("message_id", messageID))

	return nil
}

func (p *Publisher) Close() error {
	err := p.channel.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
