package auth

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	goerrors "github.com/goliatone/go-errors"
)

// UserStore is the read-only credential store contract the verifier needs
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// UserProvider verifies submitted credential pairs against the user store.
// It is read-only: token issuance is the authenticator's job and happens only
// after a successful verification.
type UserProvider struct {
	store  UserStore
	logger Logger
}

var _ IdentityProvider = (*UserProvider)(nil)

// NewUserProvider will create a new UserProvider
func NewUserProvider(store UserStore) *UserProvider {
	return &UserProvider{
		store:  store,
		logger: defLogger{},
	}
}

func (u *UserProvider) WithLogger(l Logger) *UserProvider {
	u.logger = l
	return u
}

// validateLoginInput rejects malformed submissions before any store lookup.
// This failure is distinct from a credential mismatch.
func validateLoginInput(email, password string) *goerrors.Error {
	return goerrors.ValidateWithOzzo(func() error {
		return validation.Errors{
			"email":    validation.Validate(email, validation.Required, is.Email),
			"password": validation.Validate(password, validation.Required),
		}.Filter()
	}, "Invalid login request payload")
}

// VerifyIdentity will find the user, compare the password, and return the
// identity. Unknown email and wrong password produce the same failure: the
// caller must not be able to probe for account existence.
func (u UserProvider) VerifyIdentity(ctx context.Context, email, password string) (Identity, error) {
	if verr := validateLoginInput(email, password); verr != nil {
		return nil, verr
	}

	user, err := u.store.GetByEmail(ctx, email)
	if err != nil {
		if goerrors.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, MsgStoreUnavailable).
			WithTextCode("STORE_UNAVAILABLE")
	}

	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Role.IsValid() {
		return nil, invalidRole(user.Role.String(), user.ID.String())
	}

	return authIdentity{
		id:    user.ID.String(),
		email: user.Email,
		name:  user.Name,
		role:  user.Role,
	}, nil
}

// FindIdentityByIdentifier retrieves an identity without verifying a
// password. Used to re-read the principal backing an existing session.
func (u UserProvider) FindIdentityByIdentifier(ctx context.Context, identifier string) (Identity, error) {
	user, err := u.store.GetByEmail(ctx, identifier)
	if err != nil {
		if goerrors.IsNotFound(err) {
			return nil, ErrIdentityNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, MsgStoreUnavailable).
			WithTextCode("STORE_UNAVAILABLE")
	}

	if !user.Role.IsValid() {
		return nil, invalidRole(user.Role.String(), user.ID.String())
	}

	return authIdentity{
		id:    user.ID.String(),
		email: user.Email,
		name:  user.Name,
		role:  user.Role,
	}, nil
}

type authIdentity struct {
	id    string
	name  string
	email string
	role  UserRole
}

var _ Identity = authIdentity{}

func (a authIdentity) ID() string     { return a.id }
func (a authIdentity) Name() string   { return a.name }
func (a authIdentity) Email() string  { return a.email }
func (a authIdentity) Role() UserRole { return a.role }
