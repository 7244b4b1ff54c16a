package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
)

type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Matches checks plain against a stored credential in either format.
// Legacy rows compare the raw secret; the caller is responsible for
// upgrading them to the hashed format afterwards.
func (h *PasswordHasher) Matches(stored, plain string) bool {
	if domain.CredentialFormatOf(stored) == domain.CredentialHashed {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) == 1
}
