package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	user := &domain.User{ID: "u1", Name: "Alice", Role: domain.RoleSeller}
	token, err := m.Issue(user)
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, domain.RoleSeller, claims.Role)
	assert.Equal(t, "Alice", claims.Name)
}

func TestTokenManager_Parse_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	parser := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(&domain.User{ID: "u1", Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = parser.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Parse_Expired(t *testing.T) {
	m := NewTokenManager("secret", -time.Minute)

	token, err := m.Issue(&domain.User{ID: "u1", Role: domain.RoleSeller})
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Parse_Garbage(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	_, err := m.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
