package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserDeactivated = errors.New("user deactivated")

// UserRecord models one entry in the user directory. Records are built once
// at startup and never mutated afterward.
type UserRecord struct {
	Username     string `json:"username"`
	FullName     string `json:"full_name,omitempty"`
	PasswordHash string `json:"-"`
	Disabled     bool   `json:"disabled"`
}

// Identity is the request-scoped answer to "who is calling", derived from a
// verified token plus a directory lookup. A disabled identity still resolves;
// rejecting deactivated accounts is a separate gate layered on top of raw
// authentication.
type Identity struct {
	Username string `json:"username"`
	Disabled bool   `json:"disabled"`
}
