package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachdesk/coachdesk/auth"
)

var testSigningKey = []byte("test-signing-key-0123456789abcdef")

func newTokenService() *auth.TokenServiceImpl {
	return auth.NewTokenService(testSigningKey, 24, "coachdesk-test", []string{"coachdesk"}, nil)
}

func TestTokenService_Generate(t *testing.T) {
	service := newTokenService()

	t.Run("round trip preserves subject and role", func(t *testing.T) {
		identity := TestIdentity{IDValue: "user-123", RoleValue: auth.RoleCoach}

		tokenString, err := service.Generate(identity)
		require.NoError(t, err)
		require.NotEmpty(t, tokenString)

		claims, err := service.Validate(tokenString)
		require.NoError(t, err)

		assert.Equal(t, "user-123", claims.Subject())
		assert.Equal(t, "user-123", claims.UserID())
		assert.Equal(t, auth.RoleCoach, claims.Role())
		assert.True(t, claims.HasRole(auth.RoleCoach))
		assert.False(t, claims.HasRole(auth.RoleAdmin))
		assert.True(t, claims.Expires().After(time.Now()))
	})

	t.Run("rejects nil identity", func(t *testing.T) {
		_, err := service.Generate(nil)
		assert.Error(t, err)
	})

	t.Run("rejects unknown role at mint", func(t *testing.T) {
		identity := TestIdentity{IDValue: "user-123", RoleValue: auth.UserRole("SUPERADMIN")}

		_, err := service.Generate(identity)
		require.Error(t, err)
		assert.ErrorIs(t, err, auth.ErrInvalidRole)
	})
}

func TestTokenService_Validate(t *testing.T) {
	service := newTokenService()

	t.Run("expired token maps to ErrTokenExpired", func(t *testing.T) {
		past := time.Now().Add(-2 * time.Hour)
		claims := &auth.JWTClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "coachdesk-test",
				Subject:   "user-123",
				Audience:  jwt.ClaimStrings{"coachdesk"},
				IssuedAt:  jwt.NewNumericDate(past),
				ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
			},
			UID:      "user-123",
			UserRole: auth.RoleAdmin,
		}

		tokenString, err := service.SignClaims(claims)
		require.NoError(t, err)

		_, err = service.Validate(tokenString)
		assert.ErrorIs(t, err, auth.ErrTokenExpired)
	})

	t.Run("tampered payload maps to ErrTokenMalformed", func(t *testing.T) {
		identity := TestIdentity{IDValue: "user-123", RoleValue: auth.RoleAdmin}

		tokenString, err := service.Generate(identity)
		require.NoError(t, err)

		parts := strings.Split(tokenString, ".")
		require.Len(t, parts, 3)

		payload := []byte(parts[1])
		mid := len(payload) / 2
		if payload[mid] == 'x' {
			payload[mid] = 'y'
		} else {
			payload[mid] = 'x'
		}
		tampered := parts[0] + "." + string(payload) + "." + parts[2]

		_, err = service.Validate(tampered)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("tampered signature maps to ErrTokenMalformed", func(t *testing.T) {
		identity := TestIdentity{IDValue: "user-123", RoleValue: auth.RoleAdmin}

		tokenString, err := service.Generate(identity)
		require.NoError(t, err)

		parts := strings.Split(tokenString, ".")
		require.Len(t, parts, 3)

		// flip a middle character; the final one carries base64url padding
		// bits and may decode to the same signature
		sig := []byte(parts[2])
		mid := len(sig) / 2
		if sig[mid] == 'x' {
			sig[mid] = 'y'
		} else {
			sig[mid] = 'x'
		}
		tampered := parts[0] + "." + parts[1] + "." + string(sig)

		_, err = service.Validate(tampered)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("garbage maps to ErrTokenMalformed", func(t *testing.T) {
		_, err := service.Validate("not-a-token")
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("wrong issuer rejected", func(t *testing.T) {
		other := auth.NewTokenService(testSigningKey, 24, "someone-else", []string{"coachdesk"}, nil)
		identity := TestIdentity{IDValue: "user-123", RoleValue: auth.RoleAdmin}

		tokenString, err := other.Generate(identity)
		require.NoError(t, err)

		_, err = service.Validate(tokenString)
		assert.Error(t, err)
	})

	t.Run("unknown role claim fails the parse", func(t *testing.T) {
		// sign a structurally valid token carrying a role outside the enum
		now := time.Now()
		claims := &auth.JWTClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "coachdesk-test",
				Subject:   "user-123",
				Audience:  jwt.ClaimStrings{"coachdesk"},
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
			UID:      "user-123",
			UserRole: auth.UserRole("OWNER"),
		}

		tokenString, err := service.SignClaims(claims)
		require.NoError(t, err)
		require.True(t, strings.Count(tokenString, ".") == 2)

		_, err = service.Validate(tokenString)
		assert.ErrorIs(t, err, auth.ErrInvalidRole)
	})
}
