// Package taskspgxstore implements task storage against PostgreSQL using
// the pgx connection pool.
package taskspgxstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/taskvault/taskvault/core/repositories/tasksrepo"
	"github.com/taskvault/taskvault/infrastructure/databases/postgresdb"
	"github.com/taskvault/taskvault/sdk/logger"
)

type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// List returns every row of the tasks table.
func (s *Store) List(ctx context.Context) ([]tasksrepo.Task, error) {
	const q = `
	SELECT
		task_id, title, completed, due_date
	FROM
		tasks`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", postgresdb.HandlePgError(err))
	}

	tasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, fmt.Errorf("collect tasks: %w", postgresdb.HandlePgError(err))
	}

	return tasks, nil
}

// Create inserts a task only while the table holds fewer than maxTasks
// rows. The count guard lives inside the insert statement so the check
// and the mutation are one atomic unit; when the guard fails, no row
// comes back and the quota error is returned.
func (s *Store) Create(ctx context.Context, nt tasksrepo.NewTask, maxTasks int) (tasksrepo.Task, error) {
	const q = `
	INSERT INTO tasks
		(title, completed, due_date)
	SELECT
		$1, $2, $3
	WHERE
		(SELECT COUNT(*) FROM tasks) < $4
	RETURNING
		task_id, title, completed, due_date`

	rows, err := s.pool.Query(ctx, q, nt.Title, nt.Completed, nt.DueDate, maxTasks)
	if err != nil {
		return tasksrepo.Task{}, fmt.Errorf("insert task: %w", postgresdb.HandlePgError(err))
	}

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, tasksrepo.ErrQuotaExceeded
		}
		return tasksrepo.Task{}, fmt.Errorf("insert task: %w", postgresdb.HandlePgError(err))
	}

	return task, nil
}

// Update replaces the mutable fields of the task with the given id and
// returns the updated row. Zero rows returned means the task does not
// exist.
func (s *Store) Update(ctx context.Context, taskID string, ut tasksrepo.UpdateTask) (tasksrepo.Task, error) {
	const q = `
	UPDATE tasks SET
		title = $2,
		completed = $3,
		due_date = $4
	WHERE
		task_id = $1
	RETURNING
		task_id, title, completed, due_date`

	rows, err := s.pool.Query(ctx, q, taskID, ut.Title, ut.Completed, ut.DueDate)
	if err != nil {
		return tasksrepo.Task{}, fmt.Errorf("update task: %w", postgresdb.HandlePgError(err))
	}

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, tasksrepo.ErrNotFound
		}
		return tasksrepo.Task{}, fmt.Errorf("update task: %w", postgresdb.HandlePgError(err))
	}

	return task, nil
}

// Delete removes the task with the given id. Zero rows affected means the
// task does not exist.
func (s *Store) Delete(ctx context.Context, taskID string) error {
	const q = `
	DELETE FROM
		tasks
	WHERE
		task_id = $1`

	tag, err := s.pool.Exec(ctx, q, taskID)
	if err != nil {
		return fmt.Errorf("delete task: %w", postgresdb.HandlePgError(err))
	}

	if tag.RowsAffected() == 0 {
		return tasksrepo.ErrNotFound
	}

	return nil
}
