package web

import (
	"github.com/goliatone/go-router"
	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk/actions"
	"github.com/coachdesk/coachdesk/auth"
	"github.com/coachdesk/coachdesk/store"
)

// CatalogController serves the service catalog and the training calendar
type CatalogController struct {
	Logger   auth.Logger
	Repo     store.Manager
	Services *actions.ServicesHandler
	Sessions *actions.SessionsHandler
}

func NewCatalogController(repo store.Manager, logger auth.Logger) *CatalogController {
	return &CatalogController{
		Logger:   logger,
		Repo:     repo,
		Services: actions.NewServicesHandler(repo),
		Sessions: actions.NewSessionsHandler(repo),
	}
}

func (c *CatalogController) ListServices(ctx router.Context) error {
	records, err := c.Repo.Services().List(ctx.Context())
	if err != nil {
		c.Logger.Error("service list failed", "error", err)
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	return ctx.JSON(router.StatusOK, records)
}

func (c *CatalogController) CreateService(ctx router.Context) error {
	payload := new(actions.CreateServiceMessage)
	if err := ctx.Bind(payload); err != nil {
		return respondBindError(ctx, c.Logger, err)
	}

	result, err := c.Services.Create(ctx.Context(), *payload)
	return respondResult(ctx, c.Logger, result, err)
}

func (c *CatalogController) DeleteService(ctx router.Context) error {
	id, err := uuid.Parse(ctx.Param("id", ""))
	if err != nil {
		return ctx.JSON(router.StatusBadRequest, actions.Fail(actions.MsgInvalidFields))
	}

	result, err := c.Services.Delete(ctx.Context(), actions.DeleteServiceMessage{ID: id})
	return respondResult(ctx, c.Logger, result, err)
}

// ListSessions returns the whole calendar for administrators and the caller's
// own sessions for coaches
func (c *CatalogController) ListSessions(ctx router.Context) error {
	session := auth.SessionFromContext(ctx.Context())
	if !session.Present() {
		return ctx.JSON(router.StatusUnauthorized, actions.Fail(actions.MsgAuthRequired))
	}

	if session.IsAdmin() {
		records, err := c.Repo.Sessions().List(ctx.Context())
		if err != nil {
			c.Logger.Error("session list failed", "error", err)
			return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
		}
		return ctx.JSON(router.StatusOK, records)
	}

	coachID, err := session.GetUserUUID()
	if err != nil {
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	records, err := c.Repo.Sessions().ListByCoach(ctx.Context(), coachID)
	if err != nil {
		c.Logger.Error("session list failed", "error", err)
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	return ctx.JSON(router.StatusOK, records)
}

func (c *CatalogController) ScheduleSession(ctx router.Context) error {
	payload := new(actions.ScheduleSessionMessage)
	if err := ctx.Bind(payload); err != nil {
		return respondBindError(ctx, c.Logger, err)
	}

	result, err := c.Sessions.Schedule(ctx.Context(), *payload)
	return respondResult(ctx, c.Logger, result, err)
}

func (c *CatalogController) SetSessionStatus(ctx router.Context) error {
	payload := new(actions.SetSessionStatusMessage)
	if err := ctx.Bind(payload); err != nil {
		return respondBindError(ctx, c.Logger, err)
	}

	if id, err := uuid.Parse(ctx.Param("id", "")); err == nil {
		payload.ID = id
	}

	result, err := c.Sessions.SetStatus(ctx.Context(), *payload)
	return respondResult(ctx, c.Logger, result, err)
}

func (c *CatalogController) DeleteSession(ctx router.Context) error {
	id, err := uuid.Parse(ctx.Param("id", ""))
	if err != nil {
		return ctx.JSON(router.StatusBadRequest, actions.Fail(actions.MsgInvalidFields))
	}

	result, err := c.Sessions.Delete(ctx.Context(), actions.DeleteSessionMessage{ID: id})
	return respondResult(ctx, c.Logger, result, err)
}
