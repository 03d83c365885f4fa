package service

import (
	"context"
	"time"

	"github.com/apicourse/demo-api/internal/core/domain"
	"github.com/apicourse/demo-api/internal/core/ports"
	"github.com/apicourse/demo-api/internal/pkg/password"
)

const loginTokenTTL = 30 * time.Minute

// AuthService validates login attempts against the user directory and issues
// access tokens for successful ones.
type AuthService struct {
	directory ports.UserDirectory
	tokens    ports.TokenService
	loginTTL  time.Duration
}

func NewAuthService(directory ports.UserDirectory, tokens ports.TokenService, loginTTL time.Duration) *AuthService {
	if loginTTL <= 0 {
		loginTTL = loginTokenTTL
	}
	return &AuthService{directory: directory, tokens: tokens, loginTTL: loginTTL}
}

// Authenticate validates a username/password pair and returns the matching
// record. Unknown usernames and wrong passwords are indistinguishable to the
// caller: both return ErrInvalidCredentials. A disabled account with the
// correct password authenticates successfully; the deactivation gate sits at
// resource access, not at login.
func (s *AuthService) Authenticate(ctx context.Context, username, plaintext string) (*domain.UserRecord, error) {
	if username == "" || plaintext == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.directory.Lookup(ctx, username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates and mints a token for the resulting user.
func (s *AuthService) Login(ctx context.Context, username, plaintext string) (string, *domain.UserRecord, error) {
	user, err := s.Authenticate(ctx, username, plaintext)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.Username, s.loginTTL)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
