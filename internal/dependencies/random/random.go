package random

import (
	"crypto/rand"
	"encoding/base64"
)

// Random generates opaque identifiers. Mockable so that connection
// handles are deterministic in tests.
type Random interface {
	// ID generates a random identifier with the given prefix.
	ID(prefix string) string
}

// CryptoRandom implements Random using crypto/rand.
type CryptoRandom struct{}

// New creates a CryptoRandom.
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// ID generates a random identifier with the given prefix.
func (r *CryptoRandom) ID(prefix string) string {
	b := make([]byte, 12)
	_, _ = rand.Read(b)
	return prefix + base64.RawURLEncoding.EncodeToString(b)
}
