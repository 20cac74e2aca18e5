package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo, *TokenManager) {
	t.Helper()

	tokens, err := NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	users := &fakeUserRepo{}
	auth := &AuthService{userRepo: users, tokens: tokens}

	return auth, users, tokens
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	auth, users, _ := newAuthFixture(t)

	err := auth.Register(context.Background(), &RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "hunter22", Role: "BUYER",
	})
	require.NoError(t, err)

	stored, err := users.GetUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	auth, _, _ := newAuthFixture(t)
	ctx := context.Background()

	input := &RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "hunter22", Role: "BUYER"}
	require.NoError(t, auth.Register(ctx, input))

	err := auth.Register(ctx, input)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	auth, _, _ := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, auth.Register(ctx, &RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "hunter22", Role: "BUYER",
	}))

	_, unknownEmailErr := auth.Login(ctx, "nobody@example.com", "hunter22")
	_, wrongPasswordErr := auth.Login(ctx, "alice@example.com", "wrong")

	assert.ErrorIs(t, unknownEmailErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, ErrInvalidCredentials)
	assert.Equal(t, unknownEmailErr, wrongPasswordErr)
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	auth, _, tokens := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, auth.Register(ctx, &RegisterInput{
		Name: "Sam", Email: "sam@example.com", Password: "hunter22", Role: "SELLER",
	}))

	session, err := auth.Login(ctx, "sam@example.com", "hunter22")
	require.NoError(t, err)

	identity, err := tokens.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.Id, identity.UserId)
	assert.Equal(t, "SELLER", identity.Role)

	assert.Equal(t, "Sam", session.User.Name)
	assert.Equal(t, "sam@example.com", session.User.Email)
	assert.Equal(t, "SELLER", session.User.Role)
}
