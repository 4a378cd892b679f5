// Package web holds the HTTP controllers. Controllers bind and translate;
// authorization lives in the actions they invoke.
package web

import (
	"github.com/goliatone/go-router"

	"github.com/coachdesk/coachdesk/auth"
)

// SessionLoader resolves the request cookie once and plants the session in
// the request context, where operations pick it up. Anonymous requests get a
// nil session, never an error.
func SessionLoader(auther auth.HTTPAuthenticator) router.MiddlewareFunc {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(ctx router.Context) error {
			session := auther.CurrentSession(ctx)
			ctx.SetContext(auth.WithSession(ctx.Context(), session))
			return next(ctx)
		}
	}
}
