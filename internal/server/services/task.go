package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/google/uuid"
)

// TaskService runs every task operation on behalf of ownerID, which must
// come from the verified session and never from request input.
type TaskService struct {
	tasks tasks.Repository
}

func NewTaskService(repo tasks.Repository) *TaskService {
	return &TaskService{tasks: repo}
}

func (s *TaskService) List(ctx context.Context, ownerID string) ([]*models.Task, error) {
	list, err := s.tasks.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return list, nil
}

// Create rejects an empty or whitespace-only title with common.ErrValidation.
func (s *TaskService) Create(ctx context.Context, ownerID, title string) (*models.Task, error) {
	if isBlank(title) {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}

	task, err := s.tasks.Create(ctx, &models.Task{OwnerID: ownerID, Title: title})
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return task, nil
}

// Complete marks the owner's task as completed. Missing, foreign and
// malformed ids all fail with common.ErrorNotFound.
func (s *TaskService) Complete(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	if !validID(taskID) {
		return nil, common.ErrorNotFound
	}
	task, err := s.tasks.Complete(ctx, ownerID, taskID)
	return task, wrapTaskErr("completing", err)
}

// Delete removes the owner's task with the same not-found rules as Complete.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	if !validID(taskID) {
		return nil, common.ErrorNotFound
	}
	task, err := s.tasks.Delete(ctx, ownerID, taskID)
	return task, wrapTaskErr("deleting", err)
}

func validID(id string) bool {
	return uuid.Validate(id) == nil
}

func wrapTaskErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorNotFound):
		return common.ErrorNotFound
	default:
		return fmt.Errorf("error %s task: %w", op, err)
	}
}
