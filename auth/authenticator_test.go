package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coachdesk/coachdesk/auth"
)

func newAuthenticatorWithUser(t *testing.T, email, password string, role auth.UserRole) (*auth.Auther, *auth.User) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &auth.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	store := &MockUserStore{}
	store.On("GetByEmail", mock.Anything, email).Return(user, nil)

	provider := auth.NewUserProvider(store)
	return auth.NewAuthenticator(provider, testConfig()), user
}

func TestAuther_Login(t *testing.T) {
	t.Run("valid credentials mint a resolvable token", func(t *testing.T) {
		auther, _ := newAuthenticatorWithUser(t, "admin@test.dev", "s3cret-pass", auth.RoleAdmin)

		token, err := auther.Login(context.Background(), "admin@test.dev", "s3cret-pass")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		session := auther.Resolve(token)
		require.NotNil(t, session)
		assert.Equal(t, auth.RoleAdmin, session.GetRole())
	})

	t.Run("wrong password fails with the uniform error", func(t *testing.T) {
		auther, _ := newAuthenticatorWithUser(t, "admin@test.dev", "s3cret-pass", auth.RoleAdmin)

		_, err := auther.Login(context.Background(), "admin@test.dev", "wrong-pass")
		require.Error(t, err)
		assert.True(t, auth.IsInvalidCredentials(err))
	})
}

func TestAuther_Resolve(t *testing.T) {
	auther, _ := newAuthenticatorWithUser(t, "coach@test.dev", "s3cret-pass", auth.RoleCoach)

	t.Run("empty token is anonymous", func(t *testing.T) {
		assert.Nil(t, auther.Resolve(""))
	})

	t.Run("garbage token is anonymous", func(t *testing.T) {
		assert.Nil(t, auther.Resolve("garbage.token.value"))
	})

	t.Run("expired token is anonymous", func(t *testing.T) {
		cfg := testConfig()
		service := auth.NewTokenService(
			[]byte(cfg.GetSigningKey()), 24, cfg.GetIssuer(), cfg.GetAudience(), nil,
		)

		past := time.Now().Add(-48 * time.Hour)
		expired, err := service.SignClaims(&auth.JWTClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    cfg.GetIssuer(),
				Subject:   "user-123",
				Audience:  jwt.ClaimStrings(cfg.GetAudience()),
				IssuedAt:  jwt.NewNumericDate(past),
				ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
			},
			UID:      "user-123",
			UserRole: auth.RoleCoach,
		})
		require.NoError(t, err)

		assert.Nil(t, auther.Resolve(expired))
	})

	t.Run("foreign key token is anonymous", func(t *testing.T) {
		other := auth.NewTokenService([]byte("another-signing-key-xxxxxxxxxxxx"), 24, "coachdesk-test", []string{"coachdesk"}, nil)
		tokenString, err := other.Generate(TestIdentity{IDValue: "user-123", RoleValue: auth.RoleCoach})
		require.NoError(t, err)

		assert.Nil(t, auther.Resolve(tokenString))
	})
}

func TestAuther_SessionFromToken(t *testing.T) {
	auther, _ := newAuthenticatorWithUser(t, "coach@test.dev", "s3cret-pass", auth.RoleCoach)

	token, err := auther.Login(context.Background(), "coach@test.dev", "s3cret-pass")
	require.NoError(t, err)

	session, err := auther.SessionFromToken(token)
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Equal(t, auth.RoleCoach, session.Role)
	assert.NotNil(t, session.IssuedAt)
	assert.NotNil(t, session.ExpirationDate)
	assert.True(t, session.Present())
	assert.False(t, session.IsAdmin())
}
