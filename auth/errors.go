package auth

import (
	goerrors "github.com/goliatone/go-errors"
)

// MsgInvalidCredentials is the single user-facing message for any credential
// mismatch. Unknown email and wrong password are deliberately
// indistinguishable to the caller.
const MsgInvalidCredentials = "Identifiants invalides."

// MsgGenericError covers every other sign-in failure surfaced to the user.
const MsgGenericError = "Une erreur est survenue."

// MsgStoreUnavailable suggests a retry when the persistence layer is down.
const MsgStoreUnavailable = "Erreur de connexion. Vérifiez votre réseau."

// ErrInvalidCredentials is the uniform failure for unknown email or wrong
// password.
var ErrInvalidCredentials = goerrors.New(MsgInvalidCredentials, goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode("INVALID_CREDENTIALS")

// ErrIdentityNotFound is internal; it must never reach a caller without first
// being collapsed into ErrInvalidCredentials.
var ErrIdentityNotFound = goerrors.New("identity not found", goerrors.CategoryAuth).
	WithTextCode("IDENTITY_NOT_FOUND")

// ErrInvalidRole marks a role value outside the closed enumeration, found
// while minting or resolving a token.
var ErrInvalidRole = goerrors.New("unknown or invalid role", goerrors.CategoryValidation).
	WithTextCode("INVALID_ROLE")

// ErrTokenExpired marks a structurally valid token past its expiry.
var ErrTokenExpired = goerrors.New("token is expired", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode("TOKEN_EXPIRED")

// ErrTokenMalformed covers tampered, truncated, or otherwise undecodable tokens.
var ErrTokenMalformed = goerrors.New("token is malformed", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode("TOKEN_MALFORMED")

// ErrUnableToDecodeSession is returned when claims cannot be mapped to a session.
var ErrUnableToDecodeSession = goerrors.New("unable to decode session", goerrors.CategoryAuth).
	WithTextCode("SESSION_DECODE")

// ErrStoreUnavailable wraps persistence failures during identity lookup.
var ErrStoreUnavailable = goerrors.New(MsgStoreUnavailable, goerrors.CategoryInternal).
	WithTextCode("STORE_UNAVAILABLE")

// invalidRole annotates the sentinel with the offending value while staying
// matchable through goerrors.Is.
func invalidRole(role, userID string) *goerrors.Error {
	clone := ErrInvalidRole.Clone()
	if clone == nil {
		return ErrInvalidRole
	}
	clone.Source = ErrInvalidRole
	return clone.WithMetadata(map[string]any{
		"role":    role,
		"user_id": userID,
	})
}

// IsInvalidCredentials reports whether err is the uniform credential failure.
func IsInvalidCredentials(err error) bool {
	return goerrors.Is(err, ErrInvalidCredentials)
}

// IsValidationError reports whether err came from input shape validation,
// before any store lookup took place.
func IsValidationError(err error) bool {
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return false
	}
	return richErr.Category == goerrors.CategoryValidation
}

// IsTokenInvalid reports whether err is any of the token failure modes that
// collapse to an anonymous session: expired, tampered, malformed, undecodable.
func IsTokenInvalid(err error) bool {
	return goerrors.Is(err, ErrTokenExpired) ||
		goerrors.Is(err, ErrTokenMalformed) ||
		goerrors.Is(err, ErrUnableToDecodeSession) ||
		goerrors.Is(err, ErrInvalidRole)
}
