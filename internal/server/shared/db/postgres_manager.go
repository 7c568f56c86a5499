package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/voxlate/voxlate/internal/server/history"
	"github.com/voxlate/voxlate/internal/server/migrations"
	"github.com/voxlate/voxlate/internal/server/users"
)

type PostgresRepositoryManager struct {
	db      *sql.DB
	users   users.Repository
	history history.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) History() history.Repository {
	return m.history
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	users, err := users.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("user repo creation error: %w", err)
	}

	history, err := history.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("history repo creation error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:      db,
		users:   users,
		history: history,
	}

	err = m.RunMigrations(context.Background())
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
