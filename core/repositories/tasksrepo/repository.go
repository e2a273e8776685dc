// Package tasksrepo provides business access to task storage.
package tasksrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskvault/taskvault/sdk/environment"
	"github.com/taskvault/taskvault/sdk/logger"
)

// Set of error values for CRUD operations on the task resource.
var (
	ErrNotFound      = errors.New("task not found")
	ErrQuotaExceeded = errors.New("task quota exceeded")
	ErrInvalidID     = errors.New("task id is not a valid uuid")
	ErrInvalidTitle  = errors.New("task title must not be empty")
)

// Storer defines the data storage behavior the repository depends on.
// Create must be an atomic conditional insert: it fails with
// ErrQuotaExceeded when the table already holds maxTasks rows. Update and
// Delete report ErrNotFound when no row matched.
type Storer interface {
	List(ctx context.Context) ([]Task, error)
	Create(ctx context.Context, nt NewTask, maxTasks int) (Task, error)
	Update(ctx context.Context, taskID string, ut UpdateTask) (Task, error)
	Delete(ctx context.Context, taskID string) error
}

// Options represents the exportable repository configuration.
type Options struct {
	MaxTasks     int           `env:"TASKS_MAX" default:"100"`
	QueryTimeout time.Duration `env:"TASKS_QUERY_TIMEOUT" default:"5s"`
}

// Option configures the repository.
type Option func(*Repository)

// WithMaxTasks overrides the task ceiling.
func WithMaxTasks(n int) Option {
	return func(r *Repository) {
		r.maxTasks = n
	}
}

// WithQueryTimeout overrides the per-call store deadline.
func WithQueryTimeout(d time.Duration) Option {
	return func(r *Repository) {
		r.queryTimeout = d
	}
}

// Repository provides access to task storage.
type Repository struct {
	log          *logger.Logger
	storer       Storer
	maxTasks     int
	queryTimeout time.Duration
}

// NewRepository creates a task repository with default configuration.
func NewRepository(log *logger.Logger, storer Storer, opts ...Option) *Repository {
	r := &Repository{
		log:          log,
		storer:       storer,
		maxTasks:     100,
		queryTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewRepositoryFromEnv creates a task repository configured from
// environment variables.
func NewRepositoryFromEnv(prefix string, log *logger.Logger, storer Storer, opts ...Option) (*Repository, error) {
	var cfg Options
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing tasks repository config: %w", err)
	}

	all := append([]Option{
		WithMaxTasks(cfg.MaxTasks),
		WithQueryTimeout(cfg.QueryTimeout),
	}, opts...)

	return NewRepository(log, storer, all...), nil
}

// MaxTasks reports the configured ceiling.
func (r *Repository) MaxTasks() int {
	return r.maxTasks
}

// List returns every stored task, in store order.
func (r *Repository) List(ctx context.Context) ([]Task, error) {
	ctx, cancel := r.withDeadline(ctx)
	defer cancel()

	records, err := r.storer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("task repository list: %w", err)
	}

	return records, nil
}

// Create validates and stores a new task. The insert itself enforces the
// task ceiling so two concurrent creators cannot both slip under it.
func (r *Repository) Create(ctx context.Context, nt NewTask) (Task, error) {
	nt.Title = strings.TrimSpace(nt.Title)
	if nt.Title == "" {
		return Task{}, ErrInvalidTitle
	}

	ctx, cancel := r.withDeadline(ctx)
	defer cancel()

	task, err := r.storer.Create(ctx, nt, r.maxTasks)
	if err != nil {
		if errors.Is(err, ErrQuotaExceeded) {
			r.log.WarnContext(ctx, "task quota reached", "max_tasks", r.maxTasks)
			return Task{}, ErrQuotaExceeded
		}
		return Task{}, fmt.Errorf("task repository create: %w", err)
	}

	r.log.InfoContext(ctx, "task created", "task_id", task.TaskID)
	return task, nil
}

// Update fully replaces the stored fields of the task with the given id
// and returns the updated row. The existence check is folded into the
// update statement: zero rows updated means not found.
func (r *Repository) Update(ctx context.Context, taskID string, ut UpdateTask) (Task, error) {
	if _, err := uuid.Parse(taskID); err != nil {
		return Task{}, ErrInvalidID
	}

	ut.Title = strings.TrimSpace(ut.Title)
	if ut.Title == "" {
		return Task{}, ErrInvalidTitle
	}

	ctx, cancel := r.withDeadline(ctx)
	defer cancel()

	task, err := r.storer.Update(ctx, taskID, ut)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Task{}, ErrNotFound
		}
		return Task{}, fmt.Errorf("task repository update: %w", err)
	}

	return task, nil
}

// Delete removes the task with the given id. Deleting an absent id
// reports ErrNotFound rather than silently succeeding.
func (r *Repository) Delete(ctx context.Context, taskID string) error {
	if _, err := uuid.Parse(taskID); err != nil {
		return ErrInvalidID
	}

	ctx, cancel := r.withDeadline(ctx)
	defer cancel()

	if err := r.storer.Delete(ctx, taskID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("task repository delete: %w", err)
	}

	r.log.InfoContext(ctx, "task deleted", "task_id", taskID)
	return nil
}

// withDeadline bounds a store call so a slow or stuck connection cannot
// hold a handler indefinitely. Callers with an earlier deadline keep it.
func (r *Repository) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}
