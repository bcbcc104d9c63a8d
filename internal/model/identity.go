// Package model defines domain entities for the application.
package model

// Identity is the resolved caller identity attached to a request after the
// auth middleware verifies a bearer token. Downstream code receives the
// user id explicitly; it never re-reads the token.
type Identity struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
