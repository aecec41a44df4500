// Package password hashes and verifies account credentials.
//
// The default scheme is an unsalted SHA-256 hex digest, kept for
// compatibility with existing record files: two accounts with the same
// password share a digest, and a fast digest is crackable offline. New
// deployments should set PASSWORD_SCHEME=bcrypt, which stores salted
// bcrypt hashes instead.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	SchemeSHA256 = "sha256"
	SchemeBcrypt = "bcrypt"
)

// Hasher turns a plaintext password into a stored digest and checks
// candidates against it.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// New selects a hasher by config scheme name.
func New(scheme string) (Hasher, error) {
	switch scheme {
	case SchemeSHA256:
		return SHA256Hasher{}, nil
	case SchemeBcrypt:
		return BcryptHasher{}, nil
	default:
		return nil, fmt.Errorf("password: unknown scheme %q", scheme)
	}
}

// SHA256Hasher is the legacy deterministic scheme: hex SHA-256 over the
// UTF-8 bytes of the plaintext, no salt.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(plaintext string) (string, error) {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256Hasher) Verify(plaintext, digest string) bool {
	computed, _ := h.Hash(plaintext)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

// BcryptHasher is the salted slow alternative for production deployments.
type BcryptHasher struct{}

func (BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
