package web

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/goliatone/go-print"
	"github.com/goliatone/go-router"

	"github.com/coachdesk/coachdesk/actions"
	"github.com/coachdesk/coachdesk/auth"
)

// AuthControllerRoutes names the sign-in surface
type AuthControllerRoutes struct {
	Login  string
	Logout string
	Me     string
}

// AuthController handles sign-in, sign-out and the session accessor
type AuthController struct {
	Debug  bool
	Logger auth.Logger
	Routes *AuthControllerRoutes
	Auther auth.HTTPAuthenticator
}

type AuthControllerOption func(*AuthController) *AuthController

func WithAuthLogger(logger auth.Logger) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Logger = logger
		return c
	}
}

func WithAuthDebug(debug bool) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Debug = debug
		return c
	}
}

func NewAuthController(auther auth.HTTPAuthenticator, opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Auther: auther,
		Logger: auth.DefaultLogger(),
		Routes: &AuthControllerRoutes{
			Login:  "/login",
			Logout: "/logout",
			Me:     "/me",
		},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Auther == nil {
		panic("Missing HTTPAuthenticator in auth controller...")
	}

	return c
}

// LoginRequest payload
type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// GetIdentifier returns the identifier
func (r LoginRequest) GetIdentifier() string {
	return r.Email
}

// GetPassword will return the password
func (r LoginRequest) GetPassword() string {
	return r.Password
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
		),
	)
}

// LoginPost verifies credentials and installs the session cookie. Exactly two
// failure messages exist: bad input and bad credentials share one, everything
// else gets the generic one. Nothing in the response distinguishes an unknown
// email from a wrong password.
func (a *AuthController) LoginPost(ctx router.Context) error {
	payload := new(LoginRequest)

	if err := ctx.Bind(payload); err != nil {
		a.Logger.Debug("login bind failed", "error", err)
		return ctx.JSON(router.StatusUnauthorized, actions.Fail(auth.MsgInvalidCredentials))
	}

	if err := payload.Validate(); err != nil {
		return ctx.JSON(router.StatusUnauthorized, actions.Fail(auth.MsgInvalidCredentials))
	}

	if a.Debug {
		fmt.Println("======= AUTH LOGIN ======")
		fmt.Println(print.MaybePrettyJSON(payload))
		fmt.Println("=========================")
	}

	if err := a.Auther.Login(ctx, payload); err != nil {
		if auth.IsInvalidCredentials(err) || auth.IsValidationError(err) {
			return ctx.JSON(router.StatusUnauthorized, actions.Fail(auth.MsgInvalidCredentials))
		}

		a.Logger.Error("login failed", "error", err)
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	return ctx.Redirect("/", router.StatusSeeOther)
}

// LogOut clears the cookie and sends the user back to the sign-in page
func (a *AuthController) LogOut(ctx router.Context) error {
	a.Auther.Logout(ctx)
	return ctx.Redirect(a.Routes.Login, router.StatusSeeOther)
}

// Me reports the current session subject and role
func (a *AuthController) Me(ctx router.Context) error {
	session := a.Auther.CurrentSession(ctx)
	if !session.Present() {
		return ctx.JSON(router.StatusUnauthorized, actions.Fail(actions.MsgAuthRequired))
	}

	return ctx.JSON(router.StatusOK, map[string]any{
		"user": map[string]any{
			"id":   session.GetUserID(),
			"role": session.GetRole(),
		},
	})
}
