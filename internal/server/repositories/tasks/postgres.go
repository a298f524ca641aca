package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query :=
		`INSERT INTO tasks (id, user_id, title)
		 VALUES ($1, $2, $3)
		 RETURNING completed, created_at
		 `

	id := uuid.NewString()
	err := r.db.QueryRowContext(ctx, query, id, task.OwnerID, task.Title).
		Scan(&task.Completed, &task.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	task.ID = id
	return task, nil
}

func (r *PostgresRepository) List(ctx context.Context, ownerID string) ([]*models.Task, error) {
	query :=
		`SELECT id, user_id, title, completed, created_at FROM tasks
		 WHERE user_id = $1
		 ORDER BY seq
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Task, 0)
	for rows.Next() {
		t := &models.Task{}
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Completed, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Complete(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	query :=
		`UPDATE tasks SET completed = TRUE
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, title, completed, created_at
		 `
	return r.scanOne(r.db.QueryRowContext(ctx, query, taskID, ownerID))
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	query :=
		`DELETE FROM tasks
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, title, completed, created_at
		 `
	return r.scanOne(r.db.QueryRowContext(ctx, query, taskID, ownerID))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Task, error) {
	t := &models.Task{}
	err := row.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Completed, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}
