// Package model defines domain entities for the application.
package model

import "time"

// Task represents a single to-do item owned by exactly one user.
// OwnerID is fixed at creation and never changes.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
