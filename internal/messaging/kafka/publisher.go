package kafka

import (
	"context"
	"encoding/json"

	"go-hris-backoffice/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Publisher interface {
	Publish(ctx context.Context, topic string, env events.Envelope) error
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, events.Envelope) error { return nil }

// MessageFor builds the kafka message for an envelope. Messages of one
// aggregate share a key so they land on one partition in order.
func MessageFor(topic string, env events.Envelope) (kafkago.Message, error) {
	payload, err := json.Marshal(env)
	if err != nil {
		return kafkago.Message{}, err
	}

	return kafkago.Message{
		Topic: topic,
		Key:   []byte(env.TenantID + ":" + env.AggregateID),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(env.EventType)},
			{Key: "aggregate_type", Value: []byte(env.AggregateType)},
			{Key: "tenant_id", Value: []byte(env.TenantID)},
			{Key: "request_id", Value: []byte(env.RequestID)},
		},
	}, nil
}

// MessageWriter is the part of *kafkago.Writer used here.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type WriterPublisher struct {
	writer MessageWriter
	logger *zap.Logger
}

func NewWriterPublisher(writer MessageWriter, logger ...*zap.Logger) *WriterPublisher {
	l := zap.L().Named("kafka.publisher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.publisher")
	}
	return &WriterPublisher{writer: writer, logger: l}
}

func (p *WriterPublisher) Publish(ctx context.Context, topic string, env events.Envelope) error {
	msg, err := MessageFor(topic, env)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	p.logger.Debug("event published",
		zap.String("topic", topic),
		zap.String("event_type", env.EventType),
		zap.String("event_id", env.EventID),
	)
	return nil
}

// OutboxPublisher queues envelopes in outbox_events for the relay worker.
type OutboxPublisher struct {
	repo OutboxRepository
}

func NewOutboxPublisher(repo OutboxRepository) *OutboxPublisher {
	return &OutboxPublisher{repo: repo}
}

func (p *OutboxPublisher) Publish(ctx context.Context, topic string, env events.Envelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return err
	}

	return p.repo.Create(ctx, OutboxEvent{
		ID:            env.EventID,
		TenantID:      env.TenantID,
		RequestID:     env.RequestID,
		AggregateType: env.AggregateType,
		AggregateID:   env.AggregateID,
		EventType:     env.EventType,
		Topic:         topic,
		Payload:       payload,
		Status:        OutboxStatusPending,
	})
}

// Emit builds an envelope and publishes it. Failures are logged and
// swallowed: the state change they describe has already been stored.
func Emit(
	ctx context.Context,
	pub Publisher,
	logger *zap.Logger,
	topic, eventType, tenantID, aggregateType, aggregateID string,
	data any,
) {
	if pub == nil {
		return
	}

	env, err := events.New(ctx, eventType, tenantID, aggregateType, aggregateID, data)
	if err != nil {
		logger.Error("build event failed", zap.String("event_type", eventType), zap.Error(err))
		return
	}

	if err := pub.Publish(ctx, topic, env); err != nil {
		logger.Error("publish event failed",
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.String("tenant_id", tenantID),
			zap.String("aggregate_id", aggregateID),
			zap.Error(err),
		)
	}
}
