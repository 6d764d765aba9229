package security

import (
	"errors"
	"fmt"

	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"

	"github.com/Additional-Code/storehouse/internal/config"
)

// PasswordHasher turns plaintext passwords into stored digests.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// Module provides the bcrypt hasher as the PasswordHasher.
var Module = fx.Provide(
	fx.Annotate(NewBcryptHasher, fx.As(new(PasswordHasher))),
)

// ErrPasswordMismatch is returned by Verify when the password does not match.
var ErrPasswordMismatch = errors.New("password mismatch")

// BcryptHasher produces salted bcrypt digests.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher using the configured cost.
func NewBcryptHasher(cfg config.Config) *BcryptHasher {
	return &BcryptHasher{cost: cfg.Security.BcryptCost}
}

// Hash returns the bcrypt digest of plain.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify checks plain against a digest produced by Hash.
func (h *BcryptHasher) Verify(digest, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}
