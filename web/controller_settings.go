package web

import (
	"github.com/goliatone/go-router"

	"github.com/coachdesk/coachdesk/actions"
	"github.com/coachdesk/coachdesk/auth"
	"github.com/coachdesk/coachdesk/store"
)

// SettingsController serves the global settings row
type SettingsController struct {
	Logger  auth.Logger
	Repo    store.Manager
	Handler *actions.SettingsHandler
}

func NewSettingsController(repo store.Manager, logger auth.Logger) *SettingsController {
	return &SettingsController{
		Logger:  logger,
		Repo:    repo,
		Handler: actions.NewSettingsHandler(repo),
	}
}

// Get auto-creates the row with defaults on first read
func (c *SettingsController) Get(ctx router.Context) error {
	record, err := c.Repo.Settings().Get(ctx.Context())
	if err != nil {
		c.Logger.Error("settings read failed", "error", err)
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	return ctx.JSON(router.StatusOK, record)
}

func (c *SettingsController) Update(ctx router.Context) error {
	payload := new(actions.UpdateSettingsMessage)
	if err := ctx.Bind(payload); err != nil {
		return respondBindError(ctx, c.Logger, err)
	}

	result, err := c.Handler.Update(ctx.Context(), *payload)
	return respondResult(ctx, c.Logger, result, err)
}
