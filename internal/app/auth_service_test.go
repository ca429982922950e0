package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docvault/internal/pkg/jwtutil"
	"docvault/internal/repository"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(repository.NewUserRepository(newTestDB(t)), "test-secret", time.Hour)
}

func TestSignupIssuesTokenForSubject(t *testing.T) {
	svc := newAuthService(t)

	result, err := svc.Signup(SignupInput{Username: "alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
	require.NotNil(t, result.User)
	assert.NotZero(t, result.User.ID)

	claims, err := jwtutil.ParseToken("test-secret", result.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Signup(SignupInput{Username: "alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Signup(SignupInput{Username: "alice", Email: "other@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Signup(SignupInput{Username: "alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Signup(SignupInput{Username: "bob", Email: "alice@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestSigninVerifiesPassword(t *testing.T) {
	svc := newAuthService(t)

	created, err := svc.Signup(SignupInput{Username: "alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	result, err := svc.Signin(SigninInput{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, created.User.ID, result.User.ID)
}

func TestSigninWrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Signup(SignupInput{Username: "alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	_, wrongPass := svc.Signin(SigninInput{Username: "alice", Password: "password124"})
	_, unknownUser := svc.Signin(SigninInput{Username: "nobody", Password: "password123"})

	assert.ErrorIs(t, wrongPass, ErrInvalidCredential)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredential)
}

func TestGetUserByUsernameMissing(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.GetUserByUsername("ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
}
