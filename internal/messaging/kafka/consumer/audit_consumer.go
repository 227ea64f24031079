package consumer

import (
	"context"
	"encoding/json"

	"go-hris-backoffice/internal/bootstrap"
	"go-hris-backoffice/internal/events"
	"go-hris-backoffice/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader used here.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeAudit writes every HR event it reads to the audit log until ctx is
// done. Undecodable messages are committed and dropped.
func ConsumeAudit(
	ctx context.Context,
	reader MessageReader,
	consumed ConsumedEventRepository,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.audit")
	log.Info("audit consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("audit consumer stopped")
				return
			}
			log.Error("fetch audit message failed", zap.Error(err))
			continue
		}

		var env events.Envelope
		if err := json.Unmarshal(msg.Value, &env); err != nil {
			log.Error("decode event envelope failed",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			commit(ctx, reader, msg, log)
			continue
		}

		if consumed != nil {
			fresh, err := consumed.MarkConsumed(ctx, env.EventID, msg.Topic)
			if err != nil {
				// left uncommitted so the message is redelivered
				log.Error("record consumed event failed", zap.String("event_id", env.EventID), zap.Error(err))
				continue
			}
			if !fresh {
				log.Warn("duplicate event skipped",
					zap.String("event_id", env.EventID),
					zap.String("tenant_id", env.TenantID),
				)
				commit(ctx, reader, msg, log)
				continue
			}
		}

		eventCtx := contextutil.WithRequestID(ctx, env.RequestID)
		audit.Log(eventCtx, bootstrap.AuditLog{
			Action:   "EVENT_CONSUMED",
			Message:  env.EventType,
			TenantID: env.TenantID,
			Meta: map[string]any{
				"event_id":       env.EventID,
				"topic":          msg.Topic,
				"aggregate_type": env.AggregateType,
				"aggregate_id":   env.AggregateID,
				"occurred_at":    env.OccurredAt,
				"data":           env.Data,
			},
		})

		if !commit(ctx, reader, msg, log) {
			continue
		}

		log.Debug("event audited",
			zap.String("event_id", env.EventID),
			zap.String("event_type", env.EventType),
			zap.String("tenant_id", env.TenantID),
		)
	}
}

// commit reports whether the offset was stored. A failed commit means the
// message comes back on the next rebalance.
func commit(ctx context.Context, reader MessageReader, msg kafkago.Message, log *zap.Logger) bool {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit audit message failed",
			zap.String("topic", msg.Topic),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return false
	}
	return true
}
