package service

import (
	"regexp"
	"strings"
)

// Input limits.
const (
	// MaxNameLength is the maximum length for a display name.
	MaxNameLength = 100

	// MaxEmailLength is the maximum length for an email address (RFC 5321).
	MaxEmailLength = 254

	// MaxPasswordLength is the bcrypt input limit.
	MaxPasswordLength = 72

	// MaxTitleLength is the maximum length for a task title.
	MaxTitleLength = 500
)

// emailPattern is a permissive format check: something@something.something.
// Deliverability is the mail system's problem, not ours.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateRegistration checks the registration fields. Name and email
// arrive trimmed; the password is the raw string, because bcrypt hashes
// it byte-for-byte and its 72-byte cap applies before any trimming.
func validateRegistration(name, email, password string) error {
	if name == "" || email == "" || trim(password) == "" {
		return ErrMissingFields
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if len(email) > MaxEmailLength {
		return ErrEmailTooLong
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

// validateTitle checks a trimmed task title.
func validateTitle(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// trim removes surrounding whitespace.
func trim(s string) string {
	return strings.TrimSpace(s)
}
