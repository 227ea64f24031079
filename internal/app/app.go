package app

import (
	"database/sql"
	"errors"

	"go-hris-backoffice/internal/messaging/kafka"
	"go-hris-backoffice/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the external connections a Config asks for. Unused ones stay nil.
type Infra struct {
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
	Kafka  *kafkago.Writer
}

func (i Infra) Close() error {
	var errs []error
	if i.Kafka != nil {
		errs = append(errs, i.Kafka.Close())
	}
	if i.Redis != nil {
		errs = append(errs, i.Redis.Close())
	}
	if i.SQLDB != nil {
		errs = append(errs, i.SQLDB.Close())
	}
	return errors.Join(errs...)
}

func ConnectInfra(cfg Config) (Infra, error) {
	log := zap.L().Named("app.infra")
	var infra Infra

	if cfg.NeedsPostgres() {
		gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, cfg.ConnectRetries)
		if err != nil {
			return Infra{}, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return Infra{}, err
		}
		infra.GormDB, infra.SQLDB = gormDB, sqlDB
		log.Info("database connection established")
	}

	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
		if err != nil {
			_ = infra.Close()
			return Infra{}, err
		}
		infra.Redis = rdb
		log.Info("redis connection established")
	}

	if cfg.EventsMode == EventsKafka {
		writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.ConnectRetries)
		if err != nil {
			_ = infra.Close()
			return Infra{}, err
		}
		infra.Kafka = writer
		log.Info("kafka connection established")
	}

	return infra, nil
}

func buildPublisher(cfg Config, infra Infra, logger *zap.Logger) kafka.Publisher {
	switch cfg.EventsMode {
	case EventsOutbox:
		return kafka.NewOutboxPublisher(kafka.NewOutboxRepository(infra.SQLDB))
	case EventsKafka:
		return kafka.NewWriterPublisher(infra.Kafka, logger)
	default:
		return kafka.NoopPublisher{}
	}
}

// BuildApp connects what cfg needs and registers every route on router. The
// returned Infra must be closed by the caller.
func BuildApp(router *gin.Engine, cfg Config, logger *zap.Logger) (Infra, error) {
	infra, err := ConnectInfra(cfg)
	if err != nil {
		return Infra{}, err
	}

	registerModules(router, cfg, infra, buildPublisher(cfg, infra, logger), logger)
	logger.Info("app built",
		zap.String("store_backend", cfg.StoreBackend),
		zap.String("events_mode", cfg.EventsMode),
	)
	return infra, nil
}
