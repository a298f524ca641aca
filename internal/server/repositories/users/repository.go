// Package users holds the credential store: identity records keyed by a
// generated id and unique by email.
package users

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type Repository interface {
	// Create persists a new identity and fills in ID and CreatedAt.
	// It returns common.ErrDuplicateEmail when the email is taken; the check
	// and the insert are one atomic operation.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByEmail is an exact-match lookup. Returns common.ErrorNotFound
	// when no identity has that email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
