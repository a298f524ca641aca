package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func stubOpen(t *testing.T, db *sql.DB, err error) {
	t.Helper()
	orig := sqlOpen
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		if driver != "pgx" {
			t.Errorf("unexpected driver %q", driver)
		}
		return db, err
	}
	t.Cleanup(func() { sqlOpen = orig })
}

func TestNewPostgresRepositoryManager_Success(t *testing.T) {
	db, mock := newDB(t)
	defer db.Close()
	stubOpen(t, db, nil)

	mock.ExpectPing()

	m, err := NewPostgresRepositoryManager(context.Background(), "postgres://x")
	require.NoError(t, err)

	var _ RepositoryManager = m
	assert.NotNil(t, m.Users())
	assert.NotNil(t, m.Tasks())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewPostgresRepositoryManager_OpenError(t *testing.T) {
	stubOpen(t, nil, errors.New("bad dsn"))

	_, err := NewPostgresRepositoryManager(context.Background(), "::")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db open error: bad dsn")
}

func TestNewPostgresRepositoryManager_PingError(t *testing.T) {
	db, mock := newDB(t)
	stubOpen(t, db, nil)

	mock.ExpectPing().WillReturnError(errors.New("refused"))
	mock.ExpectClose()

	_, err := NewPostgresRepositoryManager(context.Background(), "postgres://x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db ping error: refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m := newPostgresRepositoryManager(db)
	require.NoError(t, m.RunMigrations(context.Background()))
}

func TestRunMigrations_PropagatesError(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := newPostgresRepositoryManager(db)
	err := m.RunMigrations(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error: boom")
}

func TestClose_ClosesPool(t *testing.T) {
	db, mock := newDB(t)
	mock.ExpectClose()

	m := newPostgresRepositoryManager(db)
	require.NoError(t, m.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
