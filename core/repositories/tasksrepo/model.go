package tasksrepo

import "time"

// Task represents a single work item. The task id is assigned by the
// store at creation time and never changes. DueDate is the only nullable
// field; nil means the task has no due date.
type Task struct {
	TaskID    string     `db:"task_id"`
	Title     string     `db:"title"`
	Completed bool       `db:"completed"`
	DueDate   *time.Time `db:"due_date"`
}

// NewTask contains the fields for creating a task. The store assigns the
// id.
type NewTask struct {
	Title     string     `db:"title"`
	Completed bool       `db:"completed"`
	DueDate   *time.Time `db:"due_date"`
}

// UpdateTask contains the replacement fields for a task. Updates are a
// full replace of everything but the id, not a merge.
type UpdateTask struct {
	Title     string     `db:"title"`
	Completed bool       `db:"completed"`
	DueDate   *time.Time `db:"due_date"`
}
