package tenantstore_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"go-hris-backoffice/internal/shared/counter"
	"go-hris-backoffice/internal/tenantstore"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var recordColumns = []string{"tenant_id", "kind", "id", "seq", "payload", "created_at", "updated_at"}

func newGormStore(t *testing.T) (*tenantstore.GormStore[note], sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	store := tenantstore.NewGormStore[note](
		gdb,
		counter.NewMemoryRepository(),
		tenantstore.Collection{Kind: "note", NotFound: errNoteNotFound},
	)
	return store, mock
}

func payloadOf(t *testing.T, n note) []byte {
	t.Helper()
	b, err := json.Marshal(n)
	require.NoError(t, err)
	return b
}

func TestGormStore_Append(t *testing.T) {
	store, mock := newGormStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "tenant_records"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Append(context.Background(), "t1", note{ID: "a", Body: "first"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Append_Duplicate(t *testing.T) {
	store, mock := newGormStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "tenant_records"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := store.Append(context.Background(), "t1", note{ID: "a"})
	assert.ErrorIs(t, err, tenantstore.ErrDuplicateRecord)
}

func TestGormStore_List(t *testing.T) {
	store, mock := newGormStore(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "tenant_records" WHERE kind = $1 AND tenant_id = $2 ORDER BY seq ASC`)).
		WithArgs("note", "t1").
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow("t1", "note", "a", 1, payloadOf(t, note{ID: "a"}), now, now).
			AddRow("t1", "note", "b", 2, payloadOf(t, note{ID: "b"}), now, now))

	got, err := store.List(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_List_OtherTenantEmpty(t *testing.T) {
	store, mock := newGormStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "tenant_records"`)).
		WithArgs("note", "t2").
		WillReturnRows(sqlmock.NewRows(recordColumns))

	got, err := store.List(context.Background(), "t2")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_FindByID_NotFound(t *testing.T) {
	store, mock := newGormStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "tenant_records"`)).
		WillReturnRows(sqlmock.NewRows(recordColumns))

	_, err := store.FindByID(context.Background(), "t1", "missing")
	assert.ErrorIs(t, err, errNoteNotFound)
}

func TestGormStore_Update(t *testing.T) {
	store, mock := newGormStore(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "tenant_records" .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow("t1", "note", "a", 1, payloadOf(t, note{ID: "a", Body: "old"}), now, now))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "tenant_records" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := store.Update(context.Background(), "t1", "a", func(n *note) error {
		n.Body = "new"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "new", got.Body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Update_RollsBack(t *testing.T) {
	store, mock := newGormStore(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "tenant_records" .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow("t1", "note", "a", 1, payloadOf(t, note{ID: "a"}), now, now))
	mock.ExpectRollback()

	_, err := store.Update(context.Background(), "t1", "a", func(*note) error { return errRejected })
	assert.ErrorIs(t, err, errRejected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
