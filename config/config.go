// Package config loads the application configuration from the environment.
// The struct is built once in main and handed down; nothing reads the
// environment after startup.
package config

import (
	"github.com/caarlos0/env/v10"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	goerrors "github.com/goliatone/go-errors"

	"github.com/coachdesk/coachdesk/auth"
)

// AppConfig holds every runtime knob
type AppConfig struct {
	ServerAddr  string `env:"SERVER_ADDR" envDefault:":8080"`
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:"file:coachdesk.db?cache=shared"`

	SigningKey      string   `env:"AUTH_SIGNING_KEY"`
	CookieName      string   `env:"AUTH_COOKIE_NAME" envDefault:"coachdesk_session"`
	TokenExpiration int      `env:"AUTH_TOKEN_EXPIRATION_HOURS" envDefault:"24"`
	Issuer          string   `env:"AUTH_ISSUER" envDefault:"coachdesk"`
	Audience        []string `env:"AUTH_AUDIENCE" envDefault:"coachdesk"`
	SecureCookies   bool     `env:"AUTH_SECURE_COOKIES" envDefault:"false"`

	GuardLoginPath  string   `env:"GUARD_LOGIN_PATH" envDefault:"/login"`
	GuardHomePath   string   `env:"GUARD_HOME_PATH" envDefault:"/"`
	GuardExclusions []string `env:"GUARD_EXCLUDED_PREFIXES" envDefault:"/assets,/static,/favicon.ico,/api"`

	SeedAdminName     string `env:"SEED_ADMIN_NAME" envDefault:"Admin"`
	SeedAdminEmail    string `env:"SEED_ADMIN_EMAIL"`
	SeedAdminPassword string `env:"SEED_ADMIN_PASSWORD"`

	Debug bool `env:"DEBUG" envDefault:"false"`
}

var _ auth.Config = (*AppConfig)(nil)

// New parses and validates the environment
func New() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to parse environment")
	}

	if err := goerrors.ValidateWithOzzo(cfg.Validate, "invalid configuration"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate enforces the startup invariants. A short signing key is refused
// outright; there is no insecure fallback secret.
func (c *AppConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.SigningKey, validation.Required, validation.Length(32, 0)),
		validation.Field(&c.CookieName, validation.Required),
		validation.Field(&c.TokenExpiration, validation.Required, validation.Min(1)),
		validation.Field(&c.Issuer, validation.Required),
		validation.Field(&c.SeedAdminEmail, is.Email),
	)
}

func (c *AppConfig) GetSigningKey() string {
	return c.SigningKey
}

func (c *AppConfig) GetContextKey() string {
	return c.CookieName
}

func (c *AppConfig) GetTokenExpiration() int {
	return c.TokenExpiration
}

func (c *AppConfig) GetIssuer() string {
	return c.Issuer
}

func (c *AppConfig) GetAudience() []string {
	return c.Audience
}

func (c *AppConfig) GetSecureCookies() bool {
	return c.SecureCookies
}
