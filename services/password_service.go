package services

import (
	"CampusTour/config/environment"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher turns a submitted password into the value that is stored.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// BcryptHasher stores a one-way bcrypt digest.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// PlainHasher stores the password as submitted.
type PlainHasher struct{}

func (PlainHasher) Hash(password string) (string, error) {
	return password, nil
}

// NewPasswordHasher picks the hasher for the configured policy.
func NewPasswordHasher(cfg environment.PasswordConfig) (PasswordHasher, error) {
	switch cfg.Policy {
	case environment.PasswordPolicyBcrypt:
		return BcryptHasher{Cost: cfg.BcryptCost}, nil
	case environment.PasswordPolicyPlain:
		return PlainHasher{}, nil
	}
	return nil, fmt.Errorf("unknown password policy %q", cfg.Policy)
}
