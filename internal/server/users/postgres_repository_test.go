package users

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxlate/voxlate/internal/common"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestPostgresRepository_Create(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo, err := NewPostgresRepository(db)
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("alice", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("id-1", now))

	user, err := repo.Create(context.Background(), &User{UserName: "alice", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Create_DuplicateUsername(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo, err := NewPostgresRepository(db)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("alice", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	_, err = repo.Create(context.Background(), &User{UserName: "alice", PasswordHash: "hash"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetUserByLogin(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo, err := NewPostgresRepository(db)
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password_hash, created_at FROM users`)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow("id-1", "alice", "hash", now))

	user, err := repo.GetUserByLogin(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.UserName)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetUserByLogin_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo, err := NewPostgresRepository(db)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password_hash, created_at FROM users`)).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetUserByLogin(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
