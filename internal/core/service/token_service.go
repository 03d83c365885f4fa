package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/apicourse/demo-api/internal/core/domain"
	"github.com/apicourse/demo-api/internal/core/ports"
)

const defaultTokenTTL = 15 * time.Minute

// TokenService mints HS256 access tokens and resolves them back into
// request-scoped identities. The signing secret is fixed at construction and
// never leaves the service.
type TokenService struct {
	directory  ports.UserDirectory
	secret     []byte
	defaultTTL time.Duration
	now        func() time.Time
}

func NewTokenService(directory ports.UserDirectory, secret string, defaultTTL time.Duration) *TokenService {
	if defaultTTL <= 0 {
		defaultTTL = defaultTokenTTL
	}
	return &TokenService{
		directory:  directory,
		secret:     []byte(secret),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Issue mints a signed token carrying the subject claim. A non-positive ttl
// applies the service default.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	now := s.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Resolve verifies a token and recovers the identity behind it.
//
// Every verification failure — bad signature, malformed token, missing or
// expired claims, unknown subject — collapses into ErrInvalidCredentials so
// that responses never leak which check failed. Deactivated accounts still
// resolve: rejecting them is the caller's second-stage gate.
func (s *TokenService) Resolve(ctx context.Context, token string) (*domain.Identity, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidCredentials
	}
	if claims.Subject == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.directory.Lookup(ctx, claims.Subject)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.Identity{Username: user.Username, Disabled: user.Disabled}, nil
}
