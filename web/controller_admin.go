package web

import (
	"github.com/goliatone/go-router"

	"github.com/coachdesk/coachdesk/actions"
	"github.com/coachdesk/coachdesk/auth"
	"github.com/coachdesk/coachdesk/store"
)

// AdminController serves principal management; every operation is ADMIN-gated
// in the action layer
type AdminController struct {
	Logger  auth.Logger
	Repo    store.Manager
	Handler *actions.CreateUserHandler
}

func NewAdminController(repo store.Manager, logger auth.Logger) *AdminController {
	return &AdminController{
		Logger:  logger,
		Repo:    repo,
		Handler: actions.NewCreateUserHandler(repo),
	}
}

func (c *AdminController) ListUsers(ctx router.Context) error {
	session := auth.SessionFromContext(ctx.Context())
	if decision := auth.RequireAdmin(session); decision.Denied() {
		return ctx.JSON(router.StatusOK, actions.Fail(actions.MsgAdminOnly))
	}

	records, err := c.Repo.Users().List(ctx.Context())
	if err != nil {
		c.Logger.Error("user list failed", "error", err)
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	return ctx.JSON(router.StatusOK, records)
}

func (c *AdminController) CreateUser(ctx router.Context) error {
	payload := new(actions.CreateUserMessage)
	if err := ctx.Bind(payload); err != nil {
		return respondBindError(ctx, c.Logger, err)
	}

	result, err := c.Handler.Execute(ctx.Context(), *payload)
	return respondResult(ctx, c.Logger, result, err)
}
