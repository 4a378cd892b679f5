package web

import (
	"github.com/goliatone/go-router"
	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk/actions"
	"github.com/coachdesk/coachdesk/auth"
	"github.com/coachdesk/coachdesk/store"
)

// RequestsController serves session change requests and the notification
// inbox they feed
type RequestsController struct {
	Logger  auth.Logger
	Repo    store.Manager
	Handler *actions.RequestsHandler
}

func NewRequestsController(repo store.Manager, logger auth.Logger) *RequestsController {
	return &RequestsController{
		Logger:  logger,
		Repo:    repo,
		Handler: actions.NewRequestsHandler(repo),
	}
}

// ListPending shows the requests awaiting a decision, administrators only
func (c *RequestsController) ListPending(ctx router.Context) error {
	session := auth.SessionFromContext(ctx.Context())
	if decision := auth.RequireAdmin(session); decision.Denied() {
		return ctx.JSON(router.StatusOK, actions.Fail(actions.MsgAdminOnly))
	}

	records, err := c.Repo.ChangeRequests().ListPending(ctx.Context())
	if err != nil {
		c.Logger.Error("pending request list failed", "error", err)
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	return ctx.JSON(router.StatusOK, records)
}

// ListMine shows the caller's own request history
func (c *RequestsController) ListMine(ctx router.Context) error {
	session := auth.SessionFromContext(ctx.Context())
	if decision := auth.RequireSession(session); decision.Denied() {
		return ctx.JSON(router.StatusUnauthorized, actions.Fail(actions.MsgAuthRequired))
	}

	userID, err := session.GetUserUUID()
	if err != nil {
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	records, err := c.Repo.ChangeRequests().ListByCoach(ctx.Context(), userID)
	if err != nil {
		c.Logger.Error("request history failed", "error", err)
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	return ctx.JSON(router.StatusOK, records)
}

func (c *RequestsController) Create(ctx router.Context) error {
	payload := new(actions.CreateChangeRequestMessage)
	if err := ctx.Bind(payload); err != nil {
		return respondBindError(ctx, c.Logger, err)
	}

	result, err := c.Handler.Create(ctx.Context(), *payload)
	return respondResult(ctx, c.Logger, result, err)
}

func (c *RequestsController) Respond(ctx router.Context) error {
	payload := new(actions.RespondChangeRequestMessage)
	if err := ctx.Bind(payload); err != nil {
		return respondBindError(ctx, c.Logger, err)
	}

	if id, err := uuid.Parse(ctx.Param("id", "")); err == nil {
		payload.ID = id
	}

	result, err := c.Handler.Respond(ctx.Context(), *payload)
	return respondResult(ctx, c.Logger, result, err)
}

// notificationsView pairs the inbox with its unread counter
type notificationsView struct {
	Notifications []*store.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}

// ListNotifications shows the caller's latest notifications with the unread
// count
func (c *RequestsController) ListNotifications(ctx router.Context) error {
	session := auth.SessionFromContext(ctx.Context())
	if decision := auth.RequireSession(session); decision.Denied() {
		return ctx.JSON(router.StatusUnauthorized, actions.Fail(actions.MsgAuthRequired))
	}

	userID, err := session.GetUserUUID()
	if err != nil {
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	records, err := c.Repo.Notifications().ListByUser(ctx.Context(), userID, 20)
	if err != nil {
		c.Logger.Error("notification list failed", "error", err)
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	unread, err := c.Repo.Notifications().CountUnread(ctx.Context(), userID)
	if err != nil {
		c.Logger.Error("notification count failed", "error", err)
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	return ctx.JSON(router.StatusOK, notificationsView{
		Notifications: records,
		Unread:        unread,
	})
}

func (c *RequestsController) MarkNotificationRead(ctx router.Context) error {
	id, err := uuid.Parse(ctx.Param("id", ""))
	if err != nil {
		return ctx.JSON(router.StatusBadRequest, actions.Fail(actions.MsgInvalidFields))
	}

	result, err := c.Handler.MarkRead(ctx.Context(), actions.MarkNotificationReadMessage{ID: id})
	return respondResult(ctx, c.Logger, result, err)
}

func (c *RequestsController) MarkAllNotificationsRead(ctx router.Context) error {
	result, err := c.Handler.MarkAllRead(ctx.Context())
	return respondResult(ctx, c.Logger, result, err)
}
