package tasks

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps tasks in insertion order. Compound-key lookups and
// the mutation that follows them run under one lock.
type MemoryRepository struct {
	mu    sync.RWMutex
	tasks []models.Task
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = uuid.NewString()
	task.Completed = false
	task.CreatedAt = time.Now().UTC()
	r.tasks = append(r.tasks, *task)

	return task, nil
}

func (r *MemoryRepository) List(ctx context.Context, ownerID string) ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Task, 0)
	for _, t := range r.tasks {
		if t.OwnerID == ownerID {
			result = append(result, &t)
		}
	}
	return result, nil
}

func (r *MemoryRepository) Complete(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(ownerID, taskID)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	r.tasks[i].Completed = true
	t := r.tasks[i]
	return &t, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(ownerID, taskID)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	t := r.tasks[i]
	r.tasks = slices.Delete(r.tasks, i, i+1)
	return &t, nil
}

// find must be called with mu held.
func (r *MemoryRepository) find(ownerID, taskID string) int {
	return slices.IndexFunc(r.tasks, func(t models.Task) bool {
		return t.ID == taskID && t.OwnerID == ownerID
	})
}
