package db

import (
	"context"
	"database/sql"

	"github.com/voxlate/voxlate/internal/server/history"
	"github.com/voxlate/voxlate/internal/server/users"
)

type InMemoryRepositoryManager struct {
	users   users.Repository
	history history.Repository
}

func (m InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m InMemoryRepositoryManager) History() history.Repository {
	return m.history
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{
		users:   users.NewInMemoryRepository(),
		history: history.NewInMemoryRepository(),
	}
}
