package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	hs "github.com/dmitrijs2005/taskkeeper/internal/server/http"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs the client against the real router backed by the memory store.
func TestClientAgainstServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := repomanager.NewMemoryRepositoryManager()
	hasher, err := auth.NewPasswordHasher(auth.AlgorithmArgon2id, 0)
	require.NoError(t, err)
	tokens := auth.NewTokenManager([]byte("e2e"), time.Hour)

	s := hs.NewHTTPServer(":0", logging.Nop{},
		services.NewUserService(m.Users(), hasher, tokens, nil),
		services.NewTaskService(m.Tasks()),
		tokens, hs.Options{})
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ctx := context.Background()
	alice := NewClient(srv.URL, 5*time.Second)
	bob := NewClient(srv.URL, 5*time.Second)

	require.NoError(t, alice.Ping(ctx))

	msg, err := alice.Register(ctx, "alice", "a@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "User registered successfully", msg)

	_, err = bob.Register(ctx, "bob", "a@x.com", "x")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)

	_, err = bob.Register(ctx, "bob", "b@x.com", "pw456")
	require.NoError(t, err)

	_, err = alice.Login(ctx, "a@x.com", "pw123")
	require.NoError(t, err)
	_, err = bob.Login(ctx, "b@x.com", "pw456")
	require.NoError(t, err)

	task, err := alice.CreateTask(ctx, "buy milk")
	require.NoError(t, err)
	assert.False(t, task.Completed)

	_, err = bob.CompleteTask(ctx, task.ID)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)

	done, err := alice.CompleteTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, done.Completed)

	require.NoError(t, alice.DeleteTask(ctx, task.ID))
	list, err := alice.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, alice.Logout(ctx))
	_, err = alice.ListTasks(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}
