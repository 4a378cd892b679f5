package auth

import (
	"time"

	"github.com/goliatone/go-router"
)

// RouteAuthenticator carries the cookie glue between the authenticator and
// the web layer. The session token travels in an HTTP-only cookie; the
// Secure flag follows configuration so production traffic never sends it in
// clear.
type RouteAuthenticator struct {
	auth           Authenticator
	cfg            Config
	cookieDuration time.Duration
	Logger         Logger
}

var _ HTTPAuthenticator = (*RouteAuthenticator)(nil)

// NewHTTPAuthenticator builds the HTTP-facing authenticator
func NewHTTPAuthenticator(auther Authenticator, cfg Config) (*RouteAuthenticator, error) {
	cookieDuration := 24 * time.Hour
	if cfg.GetTokenExpiration() > 0 {
		cookieDuration = time.Duration(cfg.GetTokenExpiration()) * time.Hour
	}

	return &RouteAuthenticator{
		cfg:            cfg,
		auth:           auther,
		Logger:         defLogger{},
		cookieDuration: cookieDuration,
	}, nil
}

func (a *RouteAuthenticator) WithLogger(logger Logger) *RouteAuthenticator {
	a.Logger = logger
	return a
}

func (a RouteAuthenticator) GetCookieDuration() time.Duration {
	return a.cookieDuration
}

// Login verifies the payload and, on success, stores the minted token in the
// session cookie. Sign-out is the inverse: the client discards the cookie,
// nothing is invalidated server side before natural expiry.
func (a *RouteAuthenticator) Login(ctx router.Context, payload LoginPayload) error {
	token, err := a.auth.Login(ctx.Context(), payload.GetIdentifier(), payload.GetPassword())
	if err != nil {
		a.Logger.Debug("Login failed", "error", err)
		return err
	}

	a.setCookieToken(ctx, token, a.cookieDuration)
	return nil
}

// Logout instructs the client to discard the token
func (a *RouteAuthenticator) Logout(ctx router.Context) {
	a.cookieDel(ctx, a.cfg.GetContextKey())
}

// CurrentSession resolves the request's session cookie into a SessionView.
// Missing, expired, and tampered tokens all come back nil.
func (a *RouteAuthenticator) CurrentSession(ctx router.Context) *SessionObject {
	raw := ctx.Cookies(a.cfg.GetContextKey())
	return a.auth.Resolve(raw)
}

func (a *RouteAuthenticator) setCookieToken(c router.Context, val string, duration time.Duration) {
	c.Cookie(&router.Cookie{
		Name:     a.cfg.GetContextKey(),
		Value:    val,
		Expires:  time.Now().Add(duration),
		HTTPOnly: true,
		Secure:   a.cfg.GetSecureCookies(),
		SameSite: "Lax",
	})
}

func (a *RouteAuthenticator) cookieDel(c router.Context, name string) {
	c.Cookie(&router.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour * (24 * 365)),
		HTTPOnly: true,
		Secure:   a.cfg.GetSecureCookies(),
		SameSite: "Lax",
	})
}
