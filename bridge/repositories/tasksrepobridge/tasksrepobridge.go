// Package tasksrepobridge provides the HTTP handlers for the task
// resource.
package tasksrepobridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/taskvault/taskvault/bridge/scaffolding/errs"
	"github.com/taskvault/taskvault/core/repositories/tasksrepo"
	"github.com/taskvault/taskvault/infrastructure/web"
)

// bridge provides HTTP handlers for task operations.
type bridge struct {
	taskRepository *tasksrepo.Repository
}

func newBridge(taskRepository *tasksrepo.Repository) *bridge {
	return &bridge{
		taskRepository: taskRepository,
	}
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	tasks, err := b.taskRepository.List(ctx)
	if err != nil {
		return errs.Newf(errs.Internal, "list tasks: %s", err)
	}

	return web.NewJSONResponse(toBridgeTasks(tasks))
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var payload taskPayload
	if err := web.Decode(r, &payload); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	created, err := b.taskRepository.Create(ctx, tasksrepo.NewTask{
		Title:     *payload.Title,
		Completed: payload.completed(),
		DueDate:   payload.DueDate,
	})
	if err != nil {
		return taskError(err, "create task")
	}

	return web.NewJSONResponseWithStatus(toBridgeTask(created), http.StatusCreated)
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	taskID := web.Param(r, "task_id")

	var payload taskPayload
	if err := web.Decode(r, &payload); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	updated, err := b.taskRepository.Update(ctx, taskID, tasksrepo.UpdateTask{
		Title:     *payload.Title,
		Completed: payload.completed(),
		DueDate:   payload.DueDate,
	})
	if err != nil {
		return taskError(err, "update task")
	}

	return web.NewJSONResponse(toBridgeTask(updated))
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	taskID := web.Param(r, "task_id")

	if err := b.taskRepository.Delete(ctx, taskID); err != nil {
		return taskError(err, "delete task")
	}

	return web.NewJSONResponse(deletedTask{ID: taskID})
}

// taskError maps repository sentinels to boundary error kinds. Anything
// unexpected is a store failure and stays a server error.
func taskError(err error, op string) *errs.Error {
	switch {
	case errors.Is(err, tasksrepo.ErrInvalidID), errors.Is(err, tasksrepo.ErrInvalidTitle):
		return errs.New(errs.InvalidArgument, err)
	case errors.Is(err, tasksrepo.ErrNotFound):
		return errs.New(errs.NotFound, err)
	case errors.Is(err, tasksrepo.ErrQuotaExceeded):
		return errs.New(errs.ResourceExhausted, err)
	default:
		return errs.Newf(errs.Internal, "%s: %s", op, err)
	}
}
