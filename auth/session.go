package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

var _ Session = &SessionObject{}

// SessionObject is the per-request materialization of a valid session token.
// It is derived fresh on every request and never persisted. A nil
// *SessionObject is the anonymous session.
type SessionObject struct {
	UserID         string     `json:"user_id,omitempty"`
	Role           UserRole   `json:"role,omitempty"`
	Issuer         string     `json:"issuer,omitempty"`
	IssuedAt       *time.Time `json:"issued_at,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
}

func (s *SessionObject) GetUserID() string {
	return s.UserID
}

func (s *SessionObject) GetUserUUID() (uuid.UUID, error) {
	return uuid.Parse(s.UserID)
}

func (s *SessionObject) GetRole() UserRole {
	return s.Role
}

func (s *SessionObject) GetIssuedAt() *time.Time {
	return s.IssuedAt
}

func (s *SessionObject) GetExpiration() *time.Time {
	return s.ExpirationDate
}

// IsAdmin reports whether the session carries the administrative role
func (s *SessionObject) IsAdmin() bool {
	return s != nil && s.Role.IsAdmin()
}

// Present reports whether the session is authenticated; false for nil
func (s *SessionObject) Present() bool {
	return s != nil
}

func (s SessionObject) String() string {
	issuedAt := "<nil>"
	if s.IssuedAt != nil {
		issuedAt = s.IssuedAt.Format(time.RFC1123)
	}
	return fmt.Sprintf("user=%s role=%s iss=%s iat=%s", s.UserID, s.Role, s.Issuer, issuedAt)
}

// SystemSession is an administrative session representing the process
// itself. Startup tasks that run operations outside any HTTP request use it;
// it never leaves the process and is never serialized into a token.
func SystemSession() *SessionObject {
	now := time.Now()
	return &SessionObject{
		UserID:   "system",
		Role:     RoleAdmin,
		Issuer:   "system",
		IssuedAt: &now,
	}
}

// sessionFromAuthClaims creates a SessionObject from validated claims. The
// role was already checked during parsing, but re-resolution through any
// other claims source goes through the same closed-enum check.
func sessionFromAuthClaims(claims AuthClaims) (*SessionObject, error) {
	if claims == nil {
		return nil, ErrUnableToDecodeSession
	}

	role, ok := ParseRole(claims.Role().String())
	if !ok {
		return nil, ErrInvalidRole
	}

	issuedAt := claims.IssuedAt()
	expiresAt := claims.Expires()

	return &SessionObject{
		UserID:         claims.UserID(),
		Role:           role,
		IssuedAt:       &issuedAt,
		ExpirationDate: &expiresAt,
	}, nil
}
