package domain

import "strings"

// User is the stored account record. Accounts are keyed by normalized
// email in the users blob, so the record itself only carries the digest.
type User struct {
	PasswordHash string `json:"passwordHash"`
}

// NormalizeEmail trims whitespace and lower-cases, yielding the unique
// key an account is stored and looked up under.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
