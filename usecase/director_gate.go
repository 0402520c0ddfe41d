package usecase

import (
	"fmt"

	"nexus-tube/domain/model"

	"golang.org/x/crypto/bcrypt"
)

// DefaultDirectorPassword is the shared static secret of the director login.
// It is a convenience gate for a demo dashboard and is not a security boundary.
const DefaultDirectorPassword = "nexus"

type IDirectorGate interface {
	Verify(password string) error
}

// DirectorGate compares a password against the hash of the configured secret
type DirectorGate struct {
	hash []byte
}

func NewDirectorGate(secret string) (*DirectorGate, error) {
	if secret == "" {
		secret = DefaultDirectorPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash director password: %w", err)
	}
	return &DirectorGate{hash: hash}, nil
}

func (g *DirectorGate) Verify(password string) error {
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(password)); err != nil {
		return fmt.Errorf("%w: wrong director password", model.ErrUnauthorized)
	}
	return nil
}
