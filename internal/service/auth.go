package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/metrics"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/repository"
)

// Auth service errors.
var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrNameTooLong        = errors.New("name exceeds maximum length")
	ErrEmailTooLong       = errors.New("email exceeds maximum length")
	ErrInvalidEmail       = errors.New("email format is invalid")
	ErrPasswordTooLong    = errors.New("password exceeds maximum length")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService handles registration, login, and token issuance.
type AuthService struct {
	users   UserStore
	hasher  *auth.Hasher
	tokens  *auth.TokenService
	metrics metrics.Recorder

	// dummyDigest is compared against when the email is unknown, so an
	// unknown email costs the same as a wrong password.
	dummyDigest string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, hasher *auth.Hasher, tokens *auth.TokenService, recorder metrics.Recorder) (*AuthService, error) {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	dummy, err := hasher.Hash("taskdeck-timing-pad")
	if err != nil {
		return nil, fmt.Errorf("prepare dummy digest: %w", err)
	}

	return &AuthService{
		users:       users,
		hasher:      hasher,
		tokens:      tokens,
		metrics:     recorder,
		dummyDigest: dummy,
	}, nil
}

// RegisterInput defines input for registering a user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new user account. No token is issued here; login
// is a separate step.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	name := trim(input.Name)
	email := trim(input.Email)
	password := input.Password

	if err := validateRegistration(name, email, password); err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           ulid.Make().String(),
		Name:         name,
		Email:        email,
		PasswordHash: digest,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.metrics.IncUserRegistered()

	return user, nil
}

// LoginOutput carries the issued token and the authenticated user.
type LoginOutput struct {
	Token string
	User  *model.User
}

// Login verifies credentials and issues a bearer token.
// Unknown email and wrong password both return ErrInvalidCredentials;
// the caller cannot tell which one happened.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginOutput, error) {
	email = trim(email)

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.hasher.Verify(password, s.dummyDigest)
			s.metrics.IncLoginFailure()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.metrics.IncLoginFailure()
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.metrics.IncLoginSuccess()

	return &LoginOutput{Token: token, User: user}, nil
}
