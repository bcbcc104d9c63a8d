package service

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func newTestTaskService() (*TaskService, *memTaskStore) {
	store := newMemTaskStore()
	return NewTaskService(store, nil), store
}

func TestTaskCreate_Success(t *testing.T) {
	svc, _ := newTestTaskService()
	ctx := context.Background()

	task, err := svc.Create(ctx, "user-a", "buy milk")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if task.Title != "buy milk" {
		t.Errorf("got title %q", task.Title)
	}
	if task.Completed {
		t.Error("new task must not be completed")
	}
	if task.OwnerID != "user-a" {
		t.Errorf("got owner %q", task.OwnerID)
	}

	tasks, err := svc.List(ctx, "user-a")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "buy milk" || tasks[0].Completed {
		t.Errorf("unexpected list: %+v", tasks)
	}
}

func TestTaskCreate_Validation(t *testing.T) {
	svc, _ := newTestTaskService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, "user-a", "   "); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("blank title: got %v, want ErrTitleRequired", err)
	}

	long := strings.Repeat("x", MaxTitleLength+1)
	if _, err := svc.Create(ctx, "user-a", long); !errors.Is(err, ErrTitleTooLong) {
		t.Errorf("long title: got %v, want ErrTitleTooLong", err)
	}
}

func TestTaskList_NewestFirst(t *testing.T) {
	svc, store := newTestTaskService()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		if _, err := svc.Create(ctx, "user-a", title); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	tasks, err := svc.List(ctx, "user-a")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "third" || tasks[2].Title != "first" {
		t.Errorf("expected newest first, got %q..%q", tasks[0].Title, tasks[2].Title)
	}

	_ = store
}

func TestTaskList_EmptyIsNotNil(t *testing.T) {
	svc, _ := newTestTaskService()

	tasks, err := svc.List(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if tasks == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(tasks))
	}
}

func TestTaskOwnership_Isolation(t *testing.T) {
	svc, _ := newTestTaskService()
	ctx := context.Background()

	taskA, err := svc.Create(ctx, "user-a", "a's task")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// B never sees A's tasks.
	tasksB, err := svc.List(ctx, "user-b")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(tasksB) != 0 {
		t.Errorf("user-b sees %d foreign tasks", len(tasksB))
	}

	// B cannot mutate A's task even with a valid id.
	if _, err := svc.UpdateTitle(ctx, "user-b", taskA.ID, "hijacked"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("foreign update: got %v, want ErrTaskNotFound", err)
	}
	if _, err := svc.Toggle(ctx, "user-b", taskA.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("foreign toggle: got %v, want ErrTaskNotFound", err)
	}
	if err := svc.Delete(ctx, "user-b", taskA.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("foreign delete: got %v, want ErrTaskNotFound", err)
	}

	// A's task is untouched.
	got, err := svc.tasks.GetTask(ctx, taskA.ID, "user-a")
	if err != nil {
		t.Fatalf("GetTask error: %v", err)
	}
	if got.Title != "a's task" || got.Completed {
		t.Errorf("task altered by foreign caller: %+v", got)
	}
}

func TestTaskUpdateTitle(t *testing.T) {
	svc, _ := newTestTaskService()
	ctx := context.Background()

	task, err := svc.Create(ctx, "user-a", "old title")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	updated, err := svc.UpdateTitle(ctx, "user-a", task.ID, "new title")
	if err != nil {
		t.Fatalf("UpdateTitle error: %v", err)
	}
	if updated.Title != "new title" {
		t.Errorf("got %q", updated.Title)
	}

	if _, err := svc.UpdateTitle(ctx, "user-a", "no-such-id", "x"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("missing id: got %v, want ErrTaskNotFound", err)
	}
	if _, err := svc.UpdateTitle(ctx, "user-a", task.ID, ""); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("empty title: got %v, want ErrTitleRequired", err)
	}
}

func TestTaskToggle_DoubleToggleRestores(t *testing.T) {
	svc, _ := newTestTaskService()
	ctx := context.Background()

	task, err := svc.Create(ctx, "user-a", "flip me")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	once, err := svc.Toggle(ctx, "user-a", task.ID)
	if err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if !once.Completed {
		t.Error("expected completed=true after first toggle")
	}

	twice, err := svc.Toggle(ctx, "user-a", task.ID)
	if err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if twice.Completed {
		t.Error("expected completed=false after second toggle")
	}

	if _, err := svc.Toggle(ctx, "user-a", "no-such-id"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("missing id: got %v, want ErrTaskNotFound", err)
	}
}

func TestTaskDelete(t *testing.T) {
	svc, _ := newTestTaskService()
	ctx := context.Background()

	task, err := svc.Create(ctx, "user-a", "short-lived")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Delete(ctx, "user-a", task.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	tasks, err := svc.List(ctx, "user-a")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(tasks))
	}

	if err := svc.Delete(ctx, "user-a", task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("second delete: got %v, want ErrTaskNotFound", err)
	}
}
