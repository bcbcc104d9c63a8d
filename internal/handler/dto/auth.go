// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "github.com/taskdeck/taskdeck/internal/model"

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of a user. It never carries the
// password hash.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse carries the issued token and the user summary.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProfileResponse wraps the authenticated user's summary.
type ProfileResponse struct {
	User UserResponse `json:"user"`
}

// MessageResponse is a simple human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToUserResponse converts a User model to its public view.
func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// IdentityToUserResponse converts a resolved identity to the public view.
func IdentityToUserResponse(id *model.Identity) UserResponse {
	return UserResponse{
		ID:    id.UserID,
		Name:  id.Name,
		Email: id.Email,
	}
}
