// Package security provides one-way password hashing.
package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword computes a salted bcrypt hash of the plaintext. The salt
// is generated per call and embedded in the returned string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash. A
// malformed hash counts as a mismatch, never an error to the caller.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
