package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	tokens, err := NewTokenManager("test-secret", 7*24*time.Hour)
	require.NoError(t, err)

	raw, err := tokens.Issue("user-1", "BUYER")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	identity, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserId)
	assert.Equal(t, "BUYER", identity.Role)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewTokenManager("secret-a", time.Hour)
	require.NoError(t, err)
	verifier, err := NewTokenManager("secret-b", time.Hour)
	require.NoError(t, err)

	raw, err := issuer.Issue("user-1", "SELLER")
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tokens, err := NewTokenManager("test-secret", -time.Hour)
	require.NoError(t, err)

	raw, err := tokens.Issue("user-1", "BUYER")
	require.NoError(t, err)

	_, err = tokens.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tokens, err := NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = tokens.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsMissingClaims(t *testing.T) {
	tokens, err := NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	// well signed but carries no role claim
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "user-1",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	raw, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tokens.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	_, err := NewTokenManager("", time.Hour)
	assert.Error(t, err)
}
