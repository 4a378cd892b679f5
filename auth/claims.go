package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the validated claims carried by a session token
type AuthClaims interface {
	Subject() string
	UserID() string
	Role() UserRole
	HasRole(role UserRole) bool
	Expires() time.Time
	IssuedAt() time.Time
}

// JWTClaims is the concrete implementation of AuthClaims
type JWTClaims struct {
	jwt.RegisteredClaims
	UID      string   `json:"uid,omitempty"`
	UserRole UserRole `json:"role,omitempty"`
}

var _ AuthClaims = (*JWTClaims)(nil)

// Validate runs as part of jwt.ParseWithClaims. The role claim is a closed
// enumeration: unknown values fail the parse instead of being coerced.
func (c *JWTClaims) Validate() error {
	if !c.UserRole.IsValid() {
		return ErrInvalidRole
	}
	return nil
}

// Subject returns the subject claim
func (c *JWTClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the user ID
func (c *JWTClaims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.Subject()
}

// Role returns the role claim snapshot taken at mint time
func (c *JWTClaims) Role() UserRole {
	return c.UserRole
}

// HasRole checks if the user has a specific role
func (c *JWTClaims) HasRole(role UserRole) bool {
	return c.UserRole == role
}

// Expires returns the expiration time
func (c *JWTClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *JWTClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}
