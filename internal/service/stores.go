// Package service provides business logic for the application.
package service

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/model"
)

// UserStore is the credential store contract the auth service depends on.
// *repository.Repository satisfies it; tests use in-memory fakes.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// TaskStore is the task store contract. Every lookup and mutation is
// scoped to the owning user.
type TaskStore interface {
	CreateTask(ctx context.Context, task *model.Task) error
	GetTask(ctx context.Context, id, ownerID string) (*model.Task, error)
	ListTasks(ctx context.Context, ownerID string) ([]*model.Task, error)
	UpdateTaskTitle(ctx context.Context, id, ownerID, title string) error
	ToggleTask(ctx context.Context, id, ownerID string) (*model.Task, error)
	DeleteTask(ctx context.Context, id, ownerID string) error
}
