package services

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// TokenIssuer hands out the single-use checkout token. Exactly one
// token is expected at a time; issuing replaces any prior value, and
// the checkout flow re-issues after every validation attempt, so a
// consumed or stale token can never validate twice.
type TokenIssuer struct {
	mu       sync.Mutex
	expected string
}

func NewTokenIssuer() *TokenIssuer { return &TokenIssuer{} }

// Issue generates a fresh 128-bit opaque token and makes it the only
// one Validate will accept.
func (t *TokenIssuer) Issue() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failure means the process has bigger problems
		panic(err)
	}
	tok := hex.EncodeToString(buf)

	t.mu.Lock()
	t.expected = tok
	t.mu.Unlock()
	return tok
}

// Validate reports whether submitted is non-empty and exactly matches
// the currently expected token.
func (t *TokenIssuer) Validate(submitted string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return submitted != "" && t.expected != "" && submitted == t.expected
}
