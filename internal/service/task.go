package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/taskdeck/taskdeck/internal/metrics"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/repository"
)

// Task service errors.
var (
	ErrTitleRequired = errors.New("title is required")
	ErrTitleTooLong  = errors.New("title exceeds maximum length")
	ErrTaskNotFound  = errors.New("task not found")
)

// TaskService handles task business logic. Every operation takes the
// caller's user id explicitly and never touches tasks owned by anyone
// else. A foreign task id behaves exactly like a missing one.
type TaskService struct {
	tasks   TaskStore
	metrics metrics.Recorder
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks TaskStore, recorder metrics.Recorder) *TaskService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &TaskService{
		tasks:   tasks,
		metrics: recorder,
	}
}

// Create persists a new task owned by the caller, initially not completed.
func (s *TaskService) Create(ctx context.Context, callerID, title string) (*model.Task, error) {
	title = trim(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &model.Task{
		ID:        ulid.Make().String(),
		Title:     title,
		Completed: false,
		OwnerID:   callerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.tasks.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.metrics.IncTaskCreated()

	return task, nil
}

// List returns all of the caller's tasks, most recent first.
// An empty list is returned as an empty slice, never nil.
func (s *TaskService) List(ctx context.Context, callerID string) ([]*model.Task, error) {
	tasks, err := s.tasks.ListTasks(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	if tasks == nil {
		tasks = []*model.Task{}
	}

	return tasks, nil
}

// UpdateTitle renames the caller's task and returns the updated record.
// Returns ErrTaskNotFound for a missing or foreign task id.
func (s *TaskService) UpdateTitle(ctx context.Context, callerID, taskID, title string) (*model.Task, error) {
	title = trim(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	if err := s.tasks.UpdateTaskTitle(ctx, taskID, callerID, title); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}

	task, err := s.tasks.GetTask(ctx, taskID, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("reload task: %w", err)
	}

	s.metrics.IncTaskUpdated()

	return task, nil
}

// Toggle flips the completion flag on the caller's task.
// Returns ErrTaskNotFound for a missing or foreign task id.
func (s *TaskService) Toggle(ctx context.Context, callerID, taskID string) (*model.Task, error) {
	task, err := s.tasks.ToggleTask(ctx, taskID, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("toggle task: %w", err)
	}

	s.metrics.IncTaskToggled()

	return task, nil
}

// Delete removes the caller's task.
// Returns ErrTaskNotFound for a missing or foreign task id.
func (s *TaskService) Delete(ctx context.Context, callerID, taskID string) error {
	if err := s.tasks.DeleteTask(ctx, taskID, callerID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}

	s.metrics.IncTaskDeleted()

	return nil
}
