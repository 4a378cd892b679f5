// Package auth implements the authentication and authorization core of
// coachdesk: credential verification against the user store, stateless JWT
// session tokens carrying a role claim, and the operation-level authorization
// guard every mutation runs before touching persistent state.
//
// The package is transport-agnostic; http.go carries the cookie glue used by
// the web layer and middleware/routeguard implements the per-request
// navigation gate.
package auth
