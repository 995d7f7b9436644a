package services

import (
	"context"
	"errors"
	"time"

	"relay-chat/internal/domain/user"
	"relay-chat/internal/repository"
	relay_errors "relay-chat/pkg/errors"
)

type UserService struct {
	repo     repository.UserRepository
	verifier CredentialVerifier
}

func NewUserService(repo repository.UserRepository, verifier CredentialVerifier) *UserService {
	if verifier == nil {
		verifier = PlaintextVerifier{}
	}
	return &UserService{repo: repo, verifier: verifier}
}

// Create stores a new user. DateJoined is always set here; a
// caller-supplied value is ignored. The existence pre-check and the insert
// are separate store calls, so concurrent signups with the same username
// can race past the check.
func (s *UserService) Create(ctx context.Context, username, password string) (user.User, error) {
	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return user.User{}, relay_errors.ErrUsernameExists
	}
	if !errors.Is(err, relay_errors.ErrNotFound) {
		return user.User{}, relay_errors.ErrSaveFailed
	}

	u := user.User{
		Username:   username,
		Password:   password,
		DateJoined: time.Now(),
	}
	if err := s.repo.Create(ctx, &u); err != nil {
		return user.User{}, relay_errors.ErrSaveFailed
	}
	return u, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (user.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, relay_errors.ErrNotFound) {
			return user.User{}, relay_errors.ErrNotFound
		}
		return user.User{}, relay_errors.ErrLookupFailed
	}
	return u, nil
}

// Authenticate reports an unknown username and a wrong password as the
// same error, so callers cannot tell which check failed.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (user.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, relay_errors.ErrNotFound) {
			return user.User{}, relay_errors.ErrInvalidCredentials
		}
		return user.User{}, relay_errors.ErrLoginFailed
	}

	if !s.verifier.Verify(u.Password, password) {
		return user.User{}, relay_errors.ErrInvalidCredentials
	}
	return u, nil
}

// DeleteByUsername removes the matching record and returns it.
func (s *UserService) DeleteByUsername(ctx context.Context, username string) (user.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, relay_errors.ErrNotFound) {
			return user.User{}, relay_errors.ErrNotFound
		}
		return user.User{}, relay_errors.ErrDeleteFailed
	}

	if err := s.repo.DeleteByUsername(ctx, username); err != nil {
		if errors.Is(err, relay_errors.ErrNotFound) {
			return user.User{}, relay_errors.ErrNotFound
		}
		return user.User{}, relay_errors.ErrDeleteFailed
	}
	return u, nil
}

// Update applies an arbitrary subset of field changes, username included.
// No field-level validation happens here; an empty password is stored
// as-is. Validation is the boundary's job.
func (s *UserService) Update(ctx context.Context, username string, changes user.Update) (user.User, error) {
	u, err := s.repo.Update(ctx, username, changes)
	if err != nil {
		if errors.Is(err, relay_errors.ErrNotFound) {
			return user.User{}, relay_errors.ErrNotFound
		}
		return user.User{}, relay_errors.ErrUpdateFailed
	}
	return u, nil
}
