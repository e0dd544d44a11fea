package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/medtrack/medtrack-api/internal/domain"
	"github.com/medtrack/medtrack-api/internal/platform/logger"
	"github.com/medtrack/medtrack-api/internal/store"
)

// SignupResult is the confirmation payload returned on successful signup.
// No token is issued at signup; the client must log in.
type SignupResult struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// LoginResult is the payload returned on successful login.
type LoginResult struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Token      string `json:"token"`
	Email      string `json:"email"`
}

// Service orchestrates signup and login against the user store. It owns no
// persistent state of its own.
type Service struct {
	userStore  store.UserStore
	jwtService JWTService
	hasher     PasswordHasher
	verifier   PasswordVerifier
	logger     *slog.Logger
}

// NewService creates a new auth Service with the given dependencies.
func NewService(
	userStore store.UserStore,
	jwtService JWTService,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		userStore:  userStore,
		jwtService: jwtService,
		hasher:     hasher,
		verifier:   verifier,
		logger:     log.With(slog.String("component", "auth_service")),
	}
}

// Signup registers a new user.
// Returns store.ErrEmailExists when the email is already taken and
// ErrEmptyPassword when the password is empty; the empty-password check runs
// before any persistence call. On success exactly one row is written.
func (s *Service) Signup(ctx context.Context, name, email, password string) (*SignupResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.userStore.GetByEmail(ctx, email)
	switch {
	case err == nil:
		log.Warn("signup rejected: email already registered")
		return nil, store.ErrEmailExists
	case !errors.Is(err, store.ErrUserNotFound):
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}

	if password == "" {
		return nil, ErrEmptyPassword
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(name, email, hash)
	if err != nil {
		return nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info("user signed up", slog.String("user_id", user.ID.String()))
	return &SignupResult{
		StatusCode: http.StatusCreated,
		Message:    "User successfully signed up",
	}, nil
}

// Login authenticates a user and issues a bearer token bound to their email.
// Returns ErrUnknownUser when no account exists for the email and
// ErrInvalidPassword when the hash comparison fails. Login writes nothing.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Warn("login rejected: password mismatch", slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidPassword
	}

	token, err := s.jwtService.GenerateToken(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))
	return &LoginResult{
		StatusCode: http.StatusCreated,
		Message:    "User successfully logged in",
		Token:      token,
		Email:      user.Email,
	}, nil
}
