package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// Supported password hashing algorithms.
const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"
)

const argon2idPrefix = "$argon2id$"

// DefaultBcryptCost matches the cost the service has always used.
const DefaultBcryptCost = 10

// PasswordHasher produces salted one-way hashes and checks candidates
// against them. New hashes use the configured algorithm; Verify accepts a
// hash made by any supported algorithm, so switching the setting does not
// lock existing users out.
type PasswordHasher struct {
	algorithm    string
	bcryptCost   int
	argon2Params *argon2id.Params
}

func NewPasswordHasher(algorithm string, bcryptCost int) (*PasswordHasher, error) {
	switch algorithm {
	case AlgorithmBcrypt, AlgorithmArgon2id:
	default:
		return nil, fmt.Errorf("unsupported password hashing algorithm %q", algorithm)
	}

	if bcryptCost == 0 {
		bcryptCost = DefaultBcryptCost
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range", bcryptCost)
	}

	return &PasswordHasher{
		algorithm:  algorithm,
		bcryptCost: bcryptCost,
		argon2Params: &argon2id.Params{
			Memory:      19 * 1024,
			Iterations:  2,
			Parallelism: 1,
			SaltLength:  16,
			KeyLength:   32,
		},
	}, nil
}

// Hash returns the encoded hash of password. The encoding carries the
// algorithm, its parameters and a fresh random salt.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if h.algorithm == AlgorithmArgon2id {
		hash, err := argon2id.CreateHash(password, h.argon2Params)
		if err != nil {
			return "", fmt.Errorf("argon2id: %w", err)
		}
		return hash, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password too long", common.ErrValidation)
		}
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches encoded. Both libraries compare
// in constant time. Malformed hashes simply do not match.
func (h *PasswordHasher) Verify(password, encoded string) bool {
	switch {
	case strings.HasPrefix(encoded, argon2idPrefix):
		match, err := argon2id.ComparePasswordAndHash(password, encoded)
		return err == nil && match
	case strings.HasPrefix(encoded, "$2"):
		return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
	default:
		return false
	}
}
