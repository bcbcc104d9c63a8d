// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered account.
// PasswordHash is never serialized in API responses.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity returns the caller identity derived from this user record.
func (u *User) Identity() *Identity {
	return &Identity{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
	}
}
