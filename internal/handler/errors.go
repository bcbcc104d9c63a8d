package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/taskdeck/taskdeck/internal/handler/dto"
	"github.com/taskdeck/taskdeck/internal/service"
)

// Error codes returned in API error responses.
const (
	codeValidation         = "VALIDATION_ERROR"
	codeEmailTaken         = "EMAIL_TAKEN"
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codeTaskNotFound       = "TASK_NOT_FOUND"
	codeBadRequest         = "BAD_REQUEST"
	codeInternal           = "INTERNAL_ERROR"
)

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, dto.ErrorResponse{Error: message, Code: code})
}

// isValidationError reports whether err is one of the field validation
// errors shared by the auth and task services.
func isValidationError(err error) bool {
	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrNameTooLong),
		errors.Is(err, service.ErrEmailTooLong),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordTooLong),
		errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrTitleTooLong):
		return true
	}
	return false
}

// writeInternalError logs the real cause and returns an opaque 500.
func writeInternalError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	logger.Error(op+" failed", slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, "internal server error", codeInternal)
}
