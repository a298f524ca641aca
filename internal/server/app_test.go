package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.StorageType = config.StorageMemory
	cfg.EndpointAddrHTTP = "127.0.0.1:0"
	cfg.BcryptCost = 4
	return cfg
}

type stubManager struct {
	migrateErr error
	closed     bool
}

func (m *stubManager) RunMigrations(context.Context) error { return m.migrateErr }
func (m *stubManager) Users() users.Repository             { return users.NewMemoryRepository() }
func (m *stubManager) Tasks() tasks.Repository             { return tasks.NewMemoryRepository() }
func (m *stubManager) Close() error                        { m.closed = true; return nil }

func stubPostgres(t *testing.T, m repomanager.RepositoryManager, err error) {
	t.Helper()
	orig := newPostgresManager
	newPostgresManager = func(ctx context.Context, dsn string) (repomanager.RepositoryManager, error) {
		return m, err
	}
	t.Cleanup(func() { newPostgresManager = orig })
}

func TestNewApp_Memory(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)
	assert.Nil(t, app.denylist)
	assert.IsType(t, &repomanager.MemoryRepositoryManager{}, app.manager)
}

func TestNewApp_WithRevocation(t *testing.T) {
	cfg := memoryConfig()
	cfg.TokenRevocation = true

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, app.denylist)
	app.close(context.Background())
}

func TestNewApp_InvalidConfig(t *testing.T) {
	cfg := memoryConfig()
	cfg.SecretKey = ""

	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestNewApp_UnknownHashAlgorithm(t *testing.T) {
	cfg := memoryConfig()
	cfg.PasswordHashAlgorithm = "md5"

	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
}

func TestNewApp_Postgres(t *testing.T) {
	cfg := memoryConfig()
	cfg.StorageType = config.StoragePostgres

	t.Run("unreachable", func(t *testing.T) {
		stubPostgres(t, nil, errors.New("connection refused"))
		_, err := NewApp(context.Background(), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db init error")
	})

	t.Run("migration failure closes pool", func(t *testing.T) {
		m := &stubManager{migrateErr: errors.New("bad migration")}
		stubPostgres(t, m, nil)
		_, err := NewApp(context.Background(), cfg)
		require.Error(t, err)
		assert.True(t, m.closed)
	})

	t.Run("ok", func(t *testing.T) {
		m := &stubManager{}
		stubPostgres(t, m, nil)
		app, err := NewApp(context.Background(), cfg)
		require.NoError(t, err)
		assert.Same(t, m, app.manager)
	})
}

func TestRun_StopsOnCancel(t *testing.T) {
	m := &stubManager{}
	stubPostgres(t, m, nil)
	cfg := memoryConfig()
	cfg.StorageType = config.StoragePostgres

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.True(t, m.closed)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
