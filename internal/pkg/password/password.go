// Package password provides one-way hashing for stored credentials, backed by
// bcrypt with its adaptive cost factor.
package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a salted bcrypt hash from a plaintext password.
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed hash
// fails verification rather than erroring: stored hashes come from trusted
// fixtures, and a mismatch is the only answer the caller can act on.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// MustHash is Hash for fixture construction at startup, where a bcrypt
// failure means the process cannot come up at all.
func MustHash(plaintext string) string {
	h, err := Hash(plaintext)
	if err != nil {
		panic("password: hash fixture: " + err.Error())
	}
	return h
}
