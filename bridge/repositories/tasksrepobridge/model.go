package tasksrepobridge

import (
	"errors"
	"strings"
	"time"

	"github.com/taskvault/taskvault/core/repositories/tasksrepo"
)

// task is the wire representation of a task. DueDate marshals as an
// RFC3339 timestamp or null.
type task struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	DueDate   *time.Time `json:"dueDate"`
}

func toBridgeTask(t tasksrepo.Task) task {
	return task{
		ID:        t.TaskID,
		Title:     t.Title,
		Completed: t.Completed,
		DueDate:   t.DueDate,
	}
}

func toBridgeTasks(ts []tasksrepo.Task) []task {
	out := make([]task, 0, len(ts))
	for _, t := range ts {
		out = append(out, toBridgeTask(t))
	}
	return out
}

// taskPayload is the request body for both create and update: updates are
// a full replace, so the two operations share one shape. A missing
// completed field defaults to false; a missing dueDate means no due date.
type taskPayload struct {
	Title     *string    `json:"title"`
	Completed *bool      `json:"completed"`
	DueDate   *time.Time `json:"dueDate"`
}

// Validate implements the web validator interface.
func (p taskPayload) Validate() error {
	if p.Title == nil || strings.TrimSpace(*p.Title) == "" {
		return errors.New("title is required")
	}
	return nil
}

func (p taskPayload) completed() bool {
	if p.Completed == nil {
		return false
	}
	return *p.Completed
}

// deletedTask acknowledges a successful delete.
type deletedTask struct {
	ID string `json:"id"`
}
