package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/handler/dto"
	"github.com/taskdeck/taskdeck/internal/service"
)

// AuthHandler handles registration, login, and profile requests.
type AuthHandler struct {
	service *service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: svc,
		logger:  logger,
	}
}

// Register creates a new user account.
// POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", codeBadRequest)
		return
	}

	user, err := h.service.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case isValidationError(err):
			writeError(w, http.StatusBadRequest, err.Error(), codeValidation)
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusBadRequest, err.Error(), codeEmailTaken)
		default:
			writeInternalError(w, h.logger, "register", err)
		}
		return
	}

	h.logger.Info("user registered",
		slog.String("user_id", user.ID),
	)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "registered"})
}

// Login verifies credentials and returns a bearer token.
// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", codeBadRequest)
		return
	}

	out, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, err.Error(), codeInvalidCredentials)
			return
		}
		writeInternalError(w, h.logger, "login", err)
		return
	}

	h.logger.Info("user logged in",
		slog.String("user_id", out.User.ID),
	)

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token: out.Token,
		User:  dto.ToUserResponse(out.User),
	})
}

// Profile returns the authenticated user's summary.
// GET /auth/profile
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	writeJSON(w, http.StatusOK, dto.ProfileResponse{
		User: dto.IdentityToUserResponse(identity),
	})
}
