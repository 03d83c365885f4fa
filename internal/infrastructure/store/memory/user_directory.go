// Package memory holds the in-memory user directory. There is no database
// behind the demo API: the directory is a fixed fixture built at startup.
package memory

import (
	"context"

	"github.com/apicourse/demo-api/internal/core/domain"
	"github.com/apicourse/demo-api/internal/pkg/password"
)

// UserDirectory is a read-only username index. The map is populated once at
// construction and never written again, so concurrent lookups need no lock.
type UserDirectory struct {
	users map[string]*domain.UserRecord
}

// NewUserDirectory builds a directory from the given records. Later records
// with a duplicate username win, mirroring last-write semantics of a seed.
func NewUserDirectory(records []*domain.UserRecord) *UserDirectory {
	users := make(map[string]*domain.UserRecord, len(records))
	for _, r := range records {
		clone := *r
		users[r.Username] = &clone
	}
	return &UserDirectory{users: users}
}

// NewSeededDirectory builds the demo fixture. johndoe is an ordinary active
// account; alice is deactivated, which lets the deactivation gate be
// demonstrated end to end. Passwords are hashed here rather than shipping
// hash literals in source.
func NewSeededDirectory() *UserDirectory {
	return NewUserDirectory([]*domain.UserRecord{
		{
			Username:     "johndoe",
			FullName:     "John Doe",
			PasswordHash: password.MustHash("secret"),
			Disabled:     false,
		},
		{
			Username:     "alice",
			FullName:     "Alice Wonderson",
			PasswordHash: password.MustHash("secret2"),
			Disabled:     true,
		},
	})
}

// Lookup resolves a username. Callers receive a copy so the fixture cannot be
// mutated through the returned record.
func (d *UserDirectory) Lookup(_ context.Context, username string) (*domain.UserRecord, error) {
	user, ok := d.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}
