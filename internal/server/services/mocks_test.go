package services

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/stretchr/testify/mock"
)

type MockUsersRepo struct {
	mock.Mock
}

func (m *MockUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	args := m.Called(ctx, u)
	out, _ := args.Get(0).(*models.User)
	return out, args.Error(1)
}

func (m *MockUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	out, _ := args.Get(0).(*models.User)
	return out, args.Error(1)
}

type MockTasksRepo struct {
	mock.Mock
}

func (m *MockTasksRepo) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	args := m.Called(ctx, t)
	out, _ := args.Get(0).(*models.Task)
	return out, args.Error(1)
}

func (m *MockTasksRepo) List(ctx context.Context, ownerID string) ([]*models.Task, error) {
	args := m.Called(ctx, ownerID)
	out, _ := args.Get(0).([]*models.Task)
	return out, args.Error(1)
}

func (m *MockTasksRepo) Complete(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	args := m.Called(ctx, ownerID, taskID)
	out, _ := args.Get(0).(*models.Task)
	return out, args.Error(1)
}

func (m *MockTasksRepo) Delete(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	args := m.Called(ctx, ownerID, taskID)
	out, _ := args.Get(0).(*models.Task)
	return out, args.Error(1)
}

type MockIssuer struct {
	mock.Mock
}

func (m *MockIssuer) Issue(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

type MockRevoker struct {
	mock.Mock
}

func (m *MockRevoker) Revoke(tokenID string) error {
	return m.Called(tokenID).Error(0)
}
