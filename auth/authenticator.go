package auth

import (
	"context"
	"reflect"
)

// Auther verifies credentials through an IdentityProvider and turns
// identities into signed session tokens.
type Auther struct {
	provider     IdentityProvider
	tokenService TokenService
	logger       Logger
}

var _ Authenticator = (*Auther)(nil)

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(provider IdentityProvider, opts Config) *Auther {
	tokenService := NewTokenService(
		[]byte(opts.GetSigningKey()),
		opts.GetTokenExpiration(),
		opts.GetIssuer(),
		opts.GetAudience(),
		defLogger{},
	)

	return &Auther{
		provider:     provider,
		tokenService: tokenService,
		logger:       defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

// Login verifies the credential pair and, on success, mints a session token
// embedding the identity's id and role. Verification and issuance stay
// separate: no token exists unless the provider succeeded.
func (s *Auther) Login(ctx context.Context, email, password string) (string, error) {
	identity, err := s.provider.VerifyIdentity(ctx, email, password)
	if err != nil {
		s.logger.Debug("Login verify identity failed", "error", err)
		return "", err
	}

	if identity == nil || reflect.ValueOf(identity).IsZero() {
		s.logger.Error("Login identity is nil or zero value")
		return "", ErrInvalidCredentials
	}

	return s.tokenService.Generate(identity)
}

// SessionFromToken validates the raw token and materializes a session,
// reporting the specific failure mode.
func (s *Auther) SessionFromToken(raw string) (*SessionObject, error) {
	claims, err := s.tokenService.Validate(raw)
	if err != nil {
		return nil, err
	}

	session, err := sessionFromAuthClaims(claims)
	if err != nil {
		s.logger.Error("SessionFromToken failed to create session from claims", "error", err)
		return nil, err
	}

	return session, nil
}

// Resolve collapses every token failure mode into the anonymous session:
// missing, expired, tampered, and malformed tokens are all identical to the
// caller. Downstream logic has exactly two cases, not four.
func (s *Auther) Resolve(raw string) *SessionObject {
	if raw == "" {
		return nil
	}

	session, err := s.SessionFromToken(raw)
	if err != nil {
		s.logger.Debug("Resolve treating token as anonymous", "error", err)
		return nil
	}

	return session
}

// IdentityFromSession re-reads the identity backing a session. Note this is
// a fresh store read; the session's role claim itself is never refreshed.
func (s *Auther) IdentityFromSession(ctx context.Context, session Session) (Identity, error) {
	identity, err := s.provider.FindIdentityByIdentifier(ctx, session.GetUserID())
	if err != nil {
		s.logger.Error("IdentityFromSession find identity by identifier", "error", err)
		return nil, err
	}

	return identity, nil
}
