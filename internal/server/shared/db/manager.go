package db

import (
	"context"
	"database/sql"

	"github.com/voxlate/voxlate/internal/server/history"
	"github.com/voxlate/voxlate/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	History() history.Repository
}
