// Package tasks holds the task store. Every operation is scoped to an owner:
// a task that belongs to someone else is indistinguishable from one that
// does not exist.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type Repository interface {
	// Create stores a new task for task.OwnerID and fills in ID, Completed
	// and CreatedAt.
	Create(ctx context.Context, task *models.Task) (*models.Task, error)

	// List returns the owner's tasks in insertion order. Never nil.
	List(ctx context.Context, ownerID string) ([]*models.Task, error)

	// Complete marks the task as completed if (taskID, ownerID) matches.
	// Returns common.ErrorNotFound otherwise.
	Complete(ctx context.Context, ownerID, taskID string) (*models.Task, error)

	// Delete removes the task if (taskID, ownerID) matches and returns the
	// removed record. Returns common.ErrorNotFound otherwise.
	Delete(ctx context.Context, ownerID, taskID string) (*models.Task, error)
}
