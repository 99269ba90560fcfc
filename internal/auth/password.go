package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltLength is the number of random bytes generated per password.
	SaltLength = 16

	// KeyLength is the length of the derived key in bytes.
	KeyLength = 32

	// Iterations is the PBKDF2 iteration count. Changing it invalidates
	// stored hashes, which is acceptable because storage is volatile.
	Iterations = 100_000
)

// ErrEmptyPassword is returned when an empty password is hashed.
var ErrEmptyPassword = errors.New("password cannot be empty")

// HashPassword derives a salted PBKDF2-SHA256 hash from a plaintext password.
// The salt is freshly generated per call and must be stored alongside the hash.
func HashPassword(password string) (salt, hash []byte, err error) {
	if password == "" {
		return nil, nil, ErrEmptyPassword
	}

	salt = make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("generate salt: %w", err)
	}

	hash = pbkdf2.Key([]byte(password), salt, Iterations, KeyLength, sha256.New)
	return salt, hash, nil
}

// VerifyPassword reports whether password matches the stored salt+hash pair.
// The comparison is constant time. Malformed inputs verify as false rather
// than erroring so callers cannot distinguish them from a wrong password.
func VerifyPassword(password string, salt, hash []byte) bool {
	if password == "" || len(salt) == 0 || len(hash) == 0 {
		return false
	}
	derived := pbkdf2.Key([]byte(password), salt, Iterations, len(hash), sha256.New)
	return subtle.ConstantTimeCompare(derived, hash) == 1
}
