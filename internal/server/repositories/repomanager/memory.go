package repomanager

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps everything in process memory. Data is lost on
// restart; meant for development and tests.
type MemoryRepositoryManager struct {
	users *users.MemoryRepository
	tasks *tasks.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users: users.NewMemoryRepository(),
		tasks: tasks.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Tasks() tasks.Repository {
	return m.tasks
}

func (m *MemoryRepositoryManager) Close() error {
	return nil
}
