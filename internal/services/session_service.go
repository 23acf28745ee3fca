package services

import (
	"context"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/logging"
	"taskboard/internal/persistence"
	"taskboard/internal/validation"
)

// sessionServiceImpl implements the SessionService interface
type sessionServiceImpl struct {
	store     Store
	validator *validation.Validator
	username  string
}

// NewSessionService creates a new SessionService instance
func NewSessionService(store Store, validator *validation.Validator) SessionService {
	return &sessionServiceImpl{
		store:     store,
		validator: validator,
	}
}

// Load reads the saved username. A missing, corrupt or blank value leaves the session anonymous.
func (s *sessionServiceImpl) Load(ctx context.Context) {
	var username string
	if !s.store.Read(ctx, persistence.KeyUsername, &username) {
		s.username = ""
		return
	}
	s.username = strings.TrimSpace(username)
	logging.Debugf("session restored for %q", s.username)
}

// Login starts a session for the trimmed username.
func (s *sessionServiceImpl) Login(ctx context.Context, username string) error {
	if err := s.validator.ValidateUsername(username); err != nil {
		return errors.NewValidationError("invalid username", err)
	}

	s.username = strings.TrimSpace(username)
	if err := s.store.Write(ctx, persistence.KeyUsername, s.username); err != nil {
		logging.Warnf("could not save session: %v", err)
		return err
	}
	return nil
}

// Logout ends the session and forgets the saved username.
func (s *sessionServiceImpl) Logout(ctx context.Context) error {
	s.username = ""
	if err := s.store.Remove(ctx, persistence.KeyUsername); err != nil {
		logging.Warnf("could not clear session: %v", err)
		return err
	}
	return nil
}

func (s *sessionServiceImpl) Current() (string, bool) {
	return s.username, s.username != ""
}

func (s *sessionServiceImpl) State() domain.SessionState {
	if s.username == "" {
		return domain.SessionAnonymous
	}
	return domain.SessionAuthenticated
}
