// Package routeguard implements the coarse per-request navigation gate. It
// only distinguishes "has a valid session" from "does not"; it carries no
// role awareness. Role-restricted operations run their own check through
// auth.Authorize — the route guard is a UX convenience, not the security
// boundary.
package routeguard

import (
	"strings"

	"github.com/goliatone/go-router"
)

// Decision is the outcome of the per-request gate
type Decision int

const (
	// Allow lets the request reach its handler
	Allow Decision = iota
	// RedirectToLogin sends anonymous requests to the sign-in page
	RedirectToLogin
	// RedirectToHome bounces signed-in users off the login page
	RedirectToHome
)

func (d Decision) String() string {
	switch d {
	case RedirectToLogin:
		return "redirect-to-login"
	case RedirectToHome:
		return "redirect-to-home"
	default:
		return "allow"
	}
}

// Config holds route guard options
type Config struct {
	// LoginPath is the sign-in page, reachable anonymously
	LoginPath string
	// HomePath is where authenticated users land
	HomePath string
	// ExcludedPrefixes bypass the guard entirely: static assets, favicon,
	// internal API prefixes. Session state is not consulted for these.
	ExcludedPrefixes []string
	// SessionPresent reports whether the request carries a valid session.
	// Wired to RouteAuthenticator.CurrentSession by the application.
	SessionPresent func(router.Context) bool
}

// ConfigDefault mirrors the application's route map
var ConfigDefault = Config{
	LoginPath: "/login",
	HomePath:  "/",
	ExcludedPrefixes: []string{
		"/assets",
		"/static",
		"/favicon.ico",
		"/api",
	},
}

// Decide is the pure per-request decision function. It is total over its
// inputs and has no side effects; the middleware below only executes its
// verdict.
func Decide(cfg Config, path string, present bool) Decision {
	for _, prefix := range cfg.ExcludedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return Allow
		}
	}

	if path == cfg.LoginPath {
		if present {
			return RedirectToHome
		}
		return Allow
	}

	if !present {
		return RedirectToLogin
	}

	return Allow
}

// New builds the guard middleware. It runs once per inbound request, before
// any handler logic.
func New(config ...Config) router.MiddlewareFunc {
	cfg := configDefault(config...)

	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(ctx router.Context) error {
			path := requestPath(ctx)
			present := cfg.SessionPresent != nil && cfg.SessionPresent(ctx)

			switch Decide(cfg, path, present) {
			case RedirectToLogin:
				return ctx.Redirect(cfg.LoginPath, router.StatusSeeOther)
			case RedirectToHome:
				return ctx.Redirect(cfg.HomePath, router.StatusSeeOther)
			default:
				return next(ctx)
			}
		}
	}
}

func configDefault(config ...Config) Config {
	if len(config) == 0 {
		return ConfigDefault
	}

	cfg := config[0]

	if cfg.LoginPath == "" {
		cfg.LoginPath = ConfigDefault.LoginPath
	}

	if cfg.HomePath == "" {
		cfg.HomePath = ConfigDefault.HomePath
	}

	if cfg.ExcludedPrefixes == nil {
		cfg.ExcludedPrefixes = ConfigDefault.ExcludedPrefixes
	}

	return cfg
}

func requestPath(ctx router.Context) string {
	path := ctx.OriginalURL()
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	return path
}
