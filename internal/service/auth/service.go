// Package auth implements the demo sign-in flow: credential check against
// seeded accounts, token issue, and session persistence across restarts.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lifechef-health/careportal-api/internal/model"
	"github.com/lifechef-health/careportal-api/internal/repository"
	"github.com/lifechef-health/careportal-api/internal/session"
	jwtauth "github.com/lifechef-health/careportal-api/pkg/auth"
	apperrors "github.com/lifechef-health/careportal-api/pkg/errors"
	"github.com/lifechef-health/careportal-api/pkg/security"
	"github.com/lifechef-health/careportal-api/pkg/sessionstore"
)

type AuthService interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*model.User, error)
	Session(ctx context.Context) session.State
	Restore(ctx context.Context) error
}

type Service struct {
	users    repository.UserRepository
	tokens   *jwtauth.JWTService
	hasher   security.PasswordHasher
	sessions *sessionstore.Store
	tracker  *session.Tracker
	delay    time.Duration
}

func NewService(users repository.UserRepository, tokens *jwtauth.JWTService, hasher security.PasswordHasher, sessions *sessionstore.Store, tracker *session.Tracker, delay time.Duration) *Service {
	return &Service{
		users:    users,
		tokens:   tokens,
		hasher:   hasher,
		sessions: sessions,
		tracker:  tracker,
		delay:    delay,
	}
}

// Login verifies credentials after a configured artificial delay. The
// delay is cancellable; a cancelled attempt clears the loading state
// without recording a failure.
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	s.tracker.Start()

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			s.tracker.Abort()
			return nil, ctx.Err()
		}
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, s.reject()
		}
		s.tracker.Abort()
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, s.reject()
	}

	token, err := s.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		s.tracker.Abort()
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.sessions.Put(token, *user)
	if err := s.sessions.Save(); err != nil {
		log.Warn().Err(err).Msg("failed to snapshot sessions")
	}
	s.tracker.Succeed(user)

	return &model.LoginResponse{Token: token, User: user}, nil
}

// reject records the failed attempt. Unknown email and wrong password
// produce the same message.
func (s *Service) reject() error {
	s.tracker.Fail(model.ErrInvalidCredentials.Error())
	return apperrors.Unauthorized(model.ErrInvalidCredentials.Error(), model.ErrInvalidCredentials)
}

// Logout drops the session marker and resets the lifecycle state.
func (s *Service) Logout(ctx context.Context, token string) error {
	s.sessions.Delete(token)
	if err := s.sessions.Save(); err != nil {
		log.Warn().Err(err).Msg("failed to snapshot sessions")
	}
	s.tracker.Reset()
	return nil
}

// Authenticate resolves a bearer token to its user. The token must both
// verify and still have a live session marker, so logout invalidates it
// before expiry.
func (s *Service) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid or expired token", err)
	}
	user, ok := s.sessions.Get(token)
	if !ok {
		return nil, apperrors.Unauthorized("session expired", nil)
	}
	if user.ID != claims.UserID {
		return nil, apperrors.Unauthorized("session mismatch", nil)
	}
	return &user, nil
}

// Session returns the current sign-in lifecycle state.
func (s *Service) Session(ctx context.Context) session.State {
	return s.tracker.Snapshot()
}

// Restore reloads the session snapshot at startup. If a live session
// marker survives, its user is signed back in without credentials.
func (s *Service) Restore(ctx context.Context) error {
	if err := s.sessions.Load(); err != nil {
		return fmt.Errorf("failed to load session snapshot: %w", err)
	}
	if user, ok := s.sessions.Any(); ok {
		restored := user
		s.tracker.Succeed(&restored)
		log.Info().Str("email", restored.Email).Msg("restored session from snapshot")
	}
	return nil
}
