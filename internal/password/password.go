// Package password decides how User passwords are stored and compared.
// Plaintext keeps the stored value verbatim; Bcrypt hashes it on write.
package password

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type Mode string

const (
	Plaintext Mode = "plaintext"
	Bcrypt    Mode = "bcrypt"
)

// ParseMode accepts "plaintext" (also the empty string) or "bcrypt".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Plaintext):
		return Plaintext, nil
	case string(Bcrypt):
		return Bcrypt, nil
	default:
		return "", fmt.Errorf("unknown password mode %q", s)
	}
}

// Hash returns the value to persist for plain.
func (m Mode) Hash(plain string) (string, error) {
	if m != Bcrypt {
		return plain, nil
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// Matches reports whether plain corresponds to the stored value.
func (m Mode) Matches(stored, plain string) bool {
	if m != Bcrypt {
		return stored == plain
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}
