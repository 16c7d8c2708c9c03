// Package token generates the opaque identifiers that address tip pages.
// A token is the only access control the system has: anyone holding it can
// read the page, nobody without it can find the page. Tokens therefore come
// from a cryptographically strong source and never encode any user input.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// rawLen is the number of random bytes per token (128 bits of entropy).
const rawLen = 16

// Len is the length of an encoded token string.
const Len = rawLen * 2

// New returns a new random token: 32 lowercase hex characters.
func New() (string, error) {
	buf := make([]byte, rawLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// IsValid reports whether s has the exact shape of a generated token.
// Lookups use this to reject malformed tokens before they reach storage,
// which also keeps tokens safe to use as file names.
func IsValid(s string) bool {
	if len(s) != Len {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
