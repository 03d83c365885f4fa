package ports

import (
	"context"
	"time"

	"github.com/apicourse/demo-api/internal/core/domain"
)

type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*domain.UserRecord, error)
	Login(ctx context.Context, username, password string) (string, *domain.UserRecord, error)
}

// TokenService mints and resolves bearer tokens. Issuance is stateless: there
// is no revocation store, so validity is purely a function of signature and
// expiry.
type TokenService interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Resolve(ctx context.Context, token string) (*domain.Identity, error)
}
