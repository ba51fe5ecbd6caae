// Package hash provides salted one-way password hashing backed by bcrypt.
package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes and verifies passwords with a fixed cost factor.
// The salt is generated per call and embedded in the resulting hash, so
// hashing the same plaintext twice yields different strings.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a hasher with the given cost factor. Costs outside
// the range bcrypt accepts fall back to bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash returns the bcrypt hash of the plaintext.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash.
// The comparison uses the cost and salt embedded in the hash and runs in
// constant time. A malformed or corrupt hash verifies as false rather
// than surfacing an error.
func (b *Bcrypt) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
