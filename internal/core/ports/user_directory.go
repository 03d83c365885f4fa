package ports

import (
	"context"

	"github.com/apicourse/demo-api/internal/core/domain"
)

// UserDirectory resolves usernames to user records.
type UserDirectory interface {
	Lookup(ctx context.Context, username string) (*domain.UserRecord, error)
}
