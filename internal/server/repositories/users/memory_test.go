package users

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	u, err := repo.Create(ctx, &models.User{UserName: "alice", Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := repo.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = repo.GetUserByEmail(ctx, "A@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound, "lookup is case-sensitive")
}

func TestMemoryRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Create(ctx, &models.User{UserName: "u1", Email: "a@x.com", PasswordHash: "p1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{UserName: "u2", Email: "a@x.com", PasswordHash: "p2"})
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	got, err := repo.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserName, "first registration must survive")
}

func TestMemoryRepository_ConcurrentRegistrationSameEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	const n = 32
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, dups int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Create(ctx, &models.User{UserName: fmt.Sprint("u", i), Email: "race@x.com"})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if err == common.ErrDuplicateEmail {
				dups++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, dups)
}
