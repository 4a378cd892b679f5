package auth_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/coachdesk/coachdesk/auth"
)

// TestIdentity is a plain identity for test fixtures
type TestIdentity struct {
	IDValue    string
	NameValue  string
	EmailValue string
	RoleValue  auth.UserRole
}

func (t TestIdentity) ID() string          { return t.IDValue }
func (t TestIdentity) Name() string        { return t.NameValue }
func (t TestIdentity) Email() string       { return t.EmailValue }
func (t TestIdentity) Role() auth.UserRole { return t.RoleValue }

// MockUserStore implements auth.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

// TestConfig implements auth.Config
type TestConfig struct {
	SigningKey      string
	ContextKey      string
	TokenExpiration int
	Issuer          string
	Audience        []string
	SecureCookies   bool
}

func (c TestConfig) GetSigningKey() string    { return c.SigningKey }
func (c TestConfig) GetContextKey() string    { return c.ContextKey }
func (c TestConfig) GetTokenExpiration() int  { return c.TokenExpiration }
func (c TestConfig) GetIssuer() string        { return c.Issuer }
func (c TestConfig) GetAudience() []string    { return c.Audience }
func (c TestConfig) GetSecureCookies() bool   { return c.SecureCookies }

func testConfig() TestConfig {
	return TestConfig{
		SigningKey:      "test-signing-key-0123456789abcdef",
		ContextKey:      "coachdesk_session",
		TokenExpiration: 24,
		Issuer:          "coachdesk-test",
		Audience:        []string{"coachdesk"},
	}
}
