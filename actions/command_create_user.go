package actions

import (
	"context"
	"database/sql"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/uptrace/bun"

	"github.com/coachdesk/coachdesk/auth"
)

// CreateUserMessage carries a new principal request
type CreateUserMessage struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	UseHashid bool   `json:"-"`
}

func (e CreateUserMessage) Type() string { return "user.create" }

func (e CreateUserMessage) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Name, validation.Required, validation.Length(2, 120)),
		validation.Field(&e.Email, validation.Required, is.Email),
		validation.Field(&e.Password, validation.Required, validation.Length(6, 72)),
		validation.Field(&e.Role, validation.Required, validation.In(
			string(auth.RoleAdmin),
			string(auth.RoleCoach),
		)),
	)
}

// UserStore is the slice of the store the handler needs
type UserStore interface {
	RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error
	Users() auth.Users
}

// CreateUserHandler registers new principals. Only administrators may run it;
// everyone else gets a denial result, never a partial write.
type CreateUserHandler struct {
	repo UserStore
}

func NewCreateUserHandler(repo UserStore) *CreateUserHandler {
	return &CreateUserHandler{repo: repo}
}

func (h *CreateUserHandler) Execute(ctx context.Context, event CreateUserMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.Authorize(session, auth.RoleAdmin); decision.Denied() {
		return Fail(MsgUserCreateDeny), nil
	}

	if err := goerrors.ValidateWithOzzo(event.Validate, "invalid user payload"); err != nil {
		return Fail(MsgInvalidFields), nil
	}

	hash, err := auth.HashPassword(event.Password)
	if err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
	}

	// Validate already pinned the role to the exact enum strings
	role, ok := auth.ParseRole(event.Role)
	if !ok {
		return Fail(MsgInvalidFields), nil
	}

	user := &auth.User{
		Name:         strings.TrimSpace(event.Name),
		Email:        event.Email,
		PasswordHash: hash,
		Role:         role,
	}

	if event.UseHashid {
		if id, err := hashid.NewUUID(event.Email); err == nil {
			user.ID = id
		}
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	err = h.repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := h.repo.Users().RegisterTx(ctx, tx, user)
		return err
	})
	if err != nil {
		// unique email constraint is the overwhelmingly likely cause
		return Fail(MsgEmailTaken), nil
	}

	return OK(MsgUserCreated), nil
}
