package tenantstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-hris-backoffice/internal/shared/counter"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const pgUniqueViolation = "23505"

type recordRow struct {
	TenantID  string    `gorm:"column:tenant_id;primaryKey"`
	Kind      string    `gorm:"column:kind;primaryKey"`
	ID        string    `gorm:"column:id;primaryKey"`
	Seq       int64     `gorm:"column:seq"`
	Payload   []byte    `gorm:"column:payload;type:jsonb"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (recordRow) TableName() string {
	return "tenant_records"
}

// GormStore persists every kind in the shared tenant_records table. The
// per-(tenant, kind) sequence from the counter keeps List in arrival order.
type GormStore[T Record] struct {
	db      *gorm.DB
	counter counter.Repository
	col     Collection
	logger  *zap.Logger
}

func NewGormStore[T Record](db *gorm.DB, counter counter.Repository, col Collection, logger ...*zap.Logger) *GormStore[T] {
	l := zap.L().Named("tenantstore.gorm")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tenantstore.gorm")
	}
	return &GormStore[T]{
		db:      db,
		counter: counter,
		col:     col,
		logger:  l.With(zap.String("kind", col.Kind)),
	}
}

func (s *GormStore[T]) Append(ctx context.Context, tenantID string, rec T) error {
	if err := CheckTenant(tenantID); err != nil {
		return err
	}
	if rec.GetID() == "" {
		return ErrEmptyID
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	seq, err := s.counter.GetNextValue(ctx, tenantID, "record:"+s.col.Kind)
	if err != nil {
		s.logger.Error("next sequence failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return err
	}

	row := recordRow{
		TenantID: tenantID,
		Kind:     s.col.Kind,
		ID:       rec.GetID(),
		Seq:      seq,
		Payload:  payload,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateRecord
		}
		s.logger.Error("insert record failed",
			zap.String("tenant_id", tenantID),
			zap.String("id", rec.GetID()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *GormStore[T]) List(ctx context.Context, tenantID string) ([]T, error) {
	if err := CheckTenant(tenantID); err != nil {
		return nil, err
	}

	var rows []recordRow
	err := s.db.WithContext(ctx).
		Scopes(Scope(tenantID)).
		Where("kind = ?", s.col.Kind).
		Order("seq ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		var rec T
		if err := json.Unmarshal(row.Payload, &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *GormStore[T]) FindByID(ctx context.Context, tenantID, id string) (T, error) {
	var rec T
	if err := CheckTenant(tenantID); err != nil {
		return rec, err
	}

	var row recordRow
	err := s.db.WithContext(ctx).
		Scopes(Scope(tenantID)).
		Where("kind = ? AND id = ?", s.col.Kind, id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rec, s.col.notFound()
		}
		return rec, err
	}

	err = json.Unmarshal(row.Payload, &rec)
	return rec, err
}

func (s *GormStore[T]) Update(ctx context.Context, tenantID, id string, fn func(*T) error) (T, error) {
	var rec T
	if err := CheckTenant(tenantID); err != nil {
		return rec, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row recordRow
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(Scope(tenantID)).
			Where("kind = ? AND id = ?", s.col.Kind, id).
			Take(&row).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return s.col.notFound()
			}
			return err
		}

		if err := json.Unmarshal(row.Payload, &rec); err != nil {
			return err
		}
		if err := fn(&rec); err != nil {
			return err
		}

		payload, err := json.Marshal(rec)
		if err != nil {
			return err
		}

		return tx.Model(&recordRow{}).
			Scopes(Scope(tenantID)).
			Where("kind = ? AND id = ?", s.col.Kind, id).
			Updates(map[string]any{
				"payload":    payload,
				"updated_at": time.Now().UTC(),
			}).Error
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}
