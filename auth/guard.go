package auth

// Reason constants for denied authorization decisions.
const (
	ReasonNotAuthenticated = "not authenticated"
	ReasonInsufficientRole = "insufficient role"
)

// Decision is the outcome of an operation-level authorization check. It is a
// value consumed immediately by the calling operation, never persisted and
// never raised as an error.
type Decision struct {
	Allowed bool
	Reason  string
}

// Denied reports whether the operation must not proceed
func (d Decision) Denied() bool {
	return !d.Allowed
}

// Allowed is the positive decision
var Allowed = Decision{Allowed: true}

// Deny builds a negative decision with the given reason
func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Authorize is the operation-level guard. Every mutating operation calls it
// before touching persistent state. The route-level guard is a navigation
// convenience only; this check is the actual security boundary and must not
// be bypassed by new entry points.
//
// A zero requiredRole means any authenticated session is acceptable.
func Authorize(session *SessionObject, requiredRole UserRole) Decision {
	if session == nil {
		return Deny(ReasonNotAuthenticated)
	}

	if requiredRole != "" && session.Role != requiredRole {
		return Deny(ReasonInsufficientRole)
	}

	return Allowed
}

// RequireAdmin gates operations reserved to administrators
func RequireAdmin(session *SessionObject) Decision {
	return Authorize(session, RoleAdmin)
}

// RequireSession gates operations open to any authenticated principal
func RequireSession(session *SessionObject) Decision {
	return Authorize(session, "")
}
