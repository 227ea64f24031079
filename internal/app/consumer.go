package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"go-hris-backoffice/internal/bootstrap"
	"go-hris-backoffice/internal/events"
	"go-hris-backoffice/internal/messaging/kafka/consumer"
	"go-hris-backoffice/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const auditConsumerGroup = "go-hris-backoffice-audit"

// RunConsumer reads every HR topic into the audit log until SIGINT/SIGTERM.
// Consumed event ids go to postgres when it is configured, otherwise they
// are tracked in memory.
func RunConsumer(cfg Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	consumed := consumer.NewMemoryConsumedEventRepository()
	if cfg.requirePostgres() == nil {
		gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, cfg.ConnectRetries)
		if err != nil {
			return err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		consumed = consumer.NewConsumedEventRepository(sqlDB)
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		GroupID:        auditConsumerGroup,
		GroupTopics:    events.Topics(),
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeAudit(ctx, reader, consumed, bootstrap.NewStdoutAuditLogger(logger), logger)

	logger.Info("consumer shut down")
	return nil
}
