package tasksrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/taskvault/taskvault/core/repositories/tasksrepo"
	"github.com/taskvault/taskvault/sdk/logger"
	"github.com/taskvault/taskvault/sdk/validation"
)

// ============================================================================
// Stubbed Storer Implementation
// ============================================================================

type stubStorer struct {
	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	lastMaxTasks int
	lastNewTask  tasksrepo.NewTask
	lastTaskID   string
	hadDeadline  bool

	// Override functions - these can be set by tests
	listFunc   func(ctx context.Context) ([]tasksrepo.Task, error)
	createFunc func(ctx context.Context, nt tasksrepo.NewTask, maxTasks int) (tasksrepo.Task, error)
	updateFunc func(ctx context.Context, taskID string, ut tasksrepo.UpdateTask) (tasksrepo.Task, error)
	deleteFunc func(ctx context.Context, taskID string) error
}

func (s *stubStorer) List(ctx context.Context) ([]tasksrepo.Task, error) {
	s.listCalls++
	_, s.hadDeadline = ctx.Deadline()
	if s.listFunc != nil {
		return s.listFunc(ctx)
	}
	return nil, nil
}

func (s *stubStorer) Create(ctx context.Context, nt tasksrepo.NewTask, maxTasks int) (tasksrepo.Task, error) {
	s.createCalls++
	s.lastNewTask = nt
	s.lastMaxTasks = maxTasks
	_, s.hadDeadline = ctx.Deadline()
	if s.createFunc != nil {
		return s.createFunc(ctx, nt, maxTasks)
	}
	return tasksrepo.Task{
		TaskID:    uuid.NewString(),
		Title:     nt.Title,
		Completed: nt.Completed,
		DueDate:   nt.DueDate,
	}, nil
}

func (s *stubStorer) Update(ctx context.Context, taskID string, ut tasksrepo.UpdateTask) (tasksrepo.Task, error) {
	s.updateCalls++
	s.lastTaskID = taskID
	_, s.hadDeadline = ctx.Deadline()
	if s.updateFunc != nil {
		return s.updateFunc(ctx, taskID, ut)
	}
	return tasksrepo.Task{
		TaskID:    taskID,
		Title:     ut.Title,
		Completed: ut.Completed,
		DueDate:   ut.DueDate,
	}, nil
}

func (s *stubStorer) Delete(ctx context.Context, taskID string) error {
	s.deleteCalls++
	s.lastTaskID = taskID
	_, s.hadDeadline = ctx.Deadline()
	if s.deleteFunc != nil {
		return s.deleteFunc(ctx, taskID)
	}
	return nil
}

func newTestRepository(storer tasksrepo.Storer, opts ...tasksrepo.Option) *tasksrepo.Repository {
	log := logger.NewDefault(logger.WithOutput(testWriter{}))
	return tasksrepo.NewRepository(log, storer, opts...)
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

// ============================================================================
// Create
// ============================================================================

func TestCreateDefaults(t *testing.T) {
	storer := &stubStorer{}
	repo := newTestRepository(storer, tasksrepo.WithMaxTasks(100))

	task, err := repo.Create(context.Background(), tasksrepo.NewTask{Title: "buy milk"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if task.Title != "buy milk" {
		t.Errorf("title = %q", task.Title)
	}
	if task.Completed {
		t.Error("completed should default to false")
	}
	if task.DueDate != nil {
		t.Errorf("due date = %v, want nil", task.DueDate)
	}
	if task.TaskID == "" {
		t.Error("task id not assigned")
	}
	if storer.lastMaxTasks != 100 {
		t.Errorf("store received ceiling %d, want 100", storer.lastMaxTasks)
	}
}

func TestCreateTrimsTitle(t *testing.T) {
	storer := &stubStorer{}
	repo := newTestRepository(storer)

	task, err := repo.Create(context.Background(), tasksrepo.NewTask{Title: "  laundry  "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.Title != "laundry" {
		t.Errorf("title = %q, want trimmed", task.Title)
	}
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{"empty", ""},
		{"whitespace only", "   \t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storer := &stubStorer{}
			repo := newTestRepository(storer)

			_, err := repo.Create(context.Background(), tasksrepo.NewTask{Title: tt.title})
			if !errors.Is(err, tasksrepo.ErrInvalidTitle) {
				t.Fatalf("err = %v, want ErrInvalidTitle", err)
			}
			if storer.createCalls != 0 {
				t.Error("store was called for invalid input")
			}
		})
	}
}

func TestCreateQuotaExceeded(t *testing.T) {
	storer := &stubStorer{
		createFunc: func(ctx context.Context, nt tasksrepo.NewTask, maxTasks int) (tasksrepo.Task, error) {
			return tasksrepo.Task{}, tasksrepo.ErrQuotaExceeded
		},
	}
	repo := newTestRepository(storer, tasksrepo.WithMaxTasks(1))

	_, err := repo.Create(context.Background(), tasksrepo.NewTask{Title: "one too many"})
	if !errors.Is(err, tasksrepo.ErrQuotaExceeded) {
		t.Fatalf("err = %v, want ErrQuotaExceeded", err)
	}
}

func TestCreateWrapsStoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	storer := &stubStorer{
		createFunc: func(ctx context.Context, nt tasksrepo.NewTask, maxTasks int) (tasksrepo.Task, error) {
			return tasksrepo.Task{}, storeErr
		},
	}
	repo := newTestRepository(storer)

	_, err := repo.Create(context.Background(), tasksrepo.NewTask{Title: "x"})
	if !errors.Is(err, storeErr) {
		t.Fatalf("err = %v, want wrapped store error", err)
	}
	if errors.Is(err, tasksrepo.ErrQuotaExceeded) {
		t.Error("store failure must not masquerade as quota error")
	}
}

func TestCreateAttachesDeadline(t *testing.T) {
	storer := &stubStorer{}
	repo := newTestRepository(storer, tasksrepo.WithQueryTimeout(time.Second))

	if _, err := repo.Create(context.Background(), tasksrepo.NewTask{Title: "x"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !storer.hadDeadline {
		t.Error("store call had no deadline")
	}
}

// ============================================================================
// Update
// ============================================================================

func TestUpdateFullReplace(t *testing.T) {
	storer := &stubStorer{}
	repo := newTestRepository(storer)

	id := uuid.NewString()
	due := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	task, err := repo.Update(context.Background(), id, tasksrepo.UpdateTask{
		Title:     "new title",
		Completed: true,
		DueDate:   validation.TimePtr(due),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if task.TaskID != id {
		t.Errorf("task id = %q, want %q", task.TaskID, id)
	}
	if task.Title != "new title" || !task.Completed {
		t.Errorf("fields not replaced: %+v", task)
	}
	if task.DueDate == nil || !task.DueDate.Equal(due) {
		t.Errorf("due date = %v, want %v", task.DueDate, due)
	}
}

func TestUpdateRejectsMalformedID(t *testing.T) {
	tests := []string{"", "nope", "1234", "5e97ac49-zzzz-4a51-9c17-85bd0e5627bf"}

	for _, id := range tests {
		storer := &stubStorer{}
		repo := newTestRepository(storer)

		_, err := repo.Update(context.Background(), id, tasksrepo.UpdateTask{Title: "x"})
		if !errors.Is(err, tasksrepo.ErrInvalidID) {
			t.Errorf("Update(%q) err = %v, want ErrInvalidID", id, err)
		}
		if storer.updateCalls != 0 {
			t.Errorf("Update(%q) reached the store", id)
		}
	}
}

func TestUpdateRejectsEmptyTitle(t *testing.T) {
	storer := &stubStorer{}
	repo := newTestRepository(storer)

	_, err := repo.Update(context.Background(), uuid.NewString(), tasksrepo.UpdateTask{Title: " "})
	if !errors.Is(err, tasksrepo.ErrInvalidTitle) {
		t.Fatalf("err = %v, want ErrInvalidTitle", err)
	}
	if storer.updateCalls != 0 {
		t.Error("store was called for invalid input")
	}
}

func TestUpdateNotFound(t *testing.T) {
	storer := &stubStorer{
		updateFunc: func(ctx context.Context, taskID string, ut tasksrepo.UpdateTask) (tasksrepo.Task, error) {
			return tasksrepo.Task{}, tasksrepo.ErrNotFound
		},
	}
	repo := newTestRepository(storer)

	_, err := repo.Update(context.Background(), uuid.NewString(), tasksrepo.UpdateTask{Title: "x"})
	if !errors.Is(err, tasksrepo.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

// ============================================================================
// Delete
// ============================================================================

func TestDelete(t *testing.T) {
	storer := &stubStorer{}
	repo := newTestRepository(storer)

	id := uuid.NewString()
	if err := repo.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if storer.lastTaskID != id {
		t.Errorf("store deleted %q, want %q", storer.lastTaskID, id)
	}
}

func TestDeleteRejectsMalformedID(t *testing.T) {
	storer := &stubStorer{}
	repo := newTestRepository(storer)

	err := repo.Delete(context.Background(), "not-a-uuid")
	if !errors.Is(err, tasksrepo.ErrInvalidID) {
		t.Fatalf("err = %v, want ErrInvalidID", err)
	}
	if storer.deleteCalls != 0 {
		t.Error("store was called for malformed id")
	}
}

func TestDeleteNotFound(t *testing.T) {
	storer := &stubStorer{
		deleteFunc: func(ctx context.Context, taskID string) error {
			return tasksrepo.ErrNotFound
		},
	}
	repo := newTestRepository(storer)

	err := repo.Delete(context.Background(), uuid.NewString())
	if !errors.Is(err, tasksrepo.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

// ============================================================================
// List
// ============================================================================

func TestListPassesThrough(t *testing.T) {
	want := []tasksrepo.Task{
		{TaskID: uuid.NewString(), Title: "a"},
		{TaskID: uuid.NewString(), Title: "b", Completed: true},
	}
	storer := &stubStorer{
		listFunc: func(ctx context.Context) ([]tasksrepo.Task, error) {
			return want, nil
		},
	}
	repo := newTestRepository(storer)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("task[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestListSurfacesStoreFailure(t *testing.T) {
	storeErr := errors.New("relation does not exist")
	storer := &stubStorer{
		listFunc: func(ctx context.Context) ([]tasksrepo.Task, error) {
			return nil, storeErr
		},
	}
	repo := newTestRepository(storer)

	_, err := repo.List(context.Background())
	if !errors.Is(err, storeErr) {
		t.Fatalf("err = %v, want wrapped store error (never an empty list)", err)
	}
}

func TestRepositoryKeepsEarlierDeadline(t *testing.T) {
	storer := &stubStorer{}
	repo := newTestRepository(storer, tasksrepo.WithQueryTimeout(time.Hour))

	deadline := time.Now().Add(50 * time.Millisecond)
	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	defer cancel()

	storer.listFunc = func(ctx context.Context) ([]tasksrepo.Task, error) {
		d, ok := ctx.Deadline()
		if !ok {
			t.Error("deadline missing")
		} else if d.After(deadline.Add(time.Millisecond)) {
			t.Errorf("deadline %v extended past caller deadline %v", d, deadline)
		}
		return nil, nil
	}

	if _, err := repo.List(ctx); err != nil {
		t.Fatalf("List: %v", err)
	}
}
