package services

import (
	"context"

	"github.com/rpupo63/blog-cms-backend/database"
	"github.com/rpupo63/blog-cms-backend/errs"
	"github.com/rs/zerolog/log"
)

type AuthService struct {
	users       database.UserStore
	credentials *CredentialService
	// compared against when the username is unknown so both failure paths cost one bcrypt check
	dummyHash string
}

func NewAuthService(users database.UserStore, credentials *CredentialService) *AuthService {
	dummyHash, err := credentials.HashPassword("dummy-password-for-unknown-users")
	if err != nil {
		log.Warn().Err(err).Msg("Failed to prepare dummy password hash")
	}
	return &AuthService{
		users:       users,
		credentials: credentials,
		dummyHash:   dummyHash,
	}
}

// Login checks username and password and returns a bearer token whose subject is the username.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errs.IsNotFound(err) {
		s.credentials.VerifyPassword(password, s.dummyHash)
		return "", errs.NewInvalidCredentialsError()
	}
	if err != nil {
		return "", err
	}

	if !s.credentials.VerifyPassword(password, user.PasswordHash) {
		return "", errs.NewInvalidCredentialsError()
	}

	token, _, err := s.credentials.IssueToken(user.Username)
	if err != nil {
		return "", errs.NewInternalErrorWithCause("failed to issue token", err)
	}
	return token, nil
}

// Authenticate validates a bearer token and returns its subject.
func (s *AuthService) Authenticate(token string) (string, error) {
	return s.credentials.ValidateToken(token)
}
