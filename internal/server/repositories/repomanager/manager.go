// Package repomanager vends the storage backends of the server: PostgreSQL
// (with goose migrations) and an in-process memory store.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Tasks() tasks.Repository
	Close() error
}
