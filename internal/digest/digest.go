// Package digest provides the deterministic, non-cryptographic string
// digest used to avoid keeping plaintext passwords in the users blob.
// It is not a security boundary and must never be treated as one.
package digest

import (
	"fmt"
	"hash/fnv"
)

// Sum returns a fixed-width hex digest of s (FNV-1a, 64 bit).
// Equal inputs always produce equal output, which is what lets login
// compare digests byte-for-byte.
func Sum(s string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return fmt.Sprintf("%016x", h.Sum64())
}
