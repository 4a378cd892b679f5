package web

import (
	"github.com/goliatone/go-router"
	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk/actions"
	"github.com/coachdesk/coachdesk/auth"
	"github.com/coachdesk/coachdesk/store"
)

// ClientsController serves the client roster and their measurement history
type ClientsController struct {
	Logger       auth.Logger
	Repo         store.Manager
	Handler      *actions.ClientsHandler
	Measurements *actions.MeasurementsHandler
}

func NewClientsController(repo store.Manager, logger auth.Logger) *ClientsController {
	return &ClientsController{
		Logger:       logger,
		Repo:         repo,
		Handler:      actions.NewClientsHandler(repo),
		Measurements: actions.NewMeasurementsHandler(repo),
	}
}

func (c *ClientsController) List(ctx router.Context) error {
	records, err := c.Repo.Clients().List(ctx.Context())
	if err != nil {
		c.Logger.Error("client list failed", "error", err)
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	return ctx.JSON(router.StatusOK, records)
}

func (c *ClientsController) Create(ctx router.Context) error {
	payload := new(actions.CreateClientMessage)
	if err := ctx.Bind(payload); err != nil {
		return respondBindError(ctx, c.Logger, err)
	}

	result, err := c.Handler.Create(ctx.Context(), *payload)
	return respondResult(ctx, c.Logger, result, err)
}

func (c *ClientsController) Update(ctx router.Context) error {
	payload := new(actions.UpdateClientMessage)
	if err := ctx.Bind(payload); err != nil {
		return respondBindError(ctx, c.Logger, err)
	}

	if id, err := uuid.Parse(ctx.Param("id", "")); err == nil {
		payload.ID = id
	}

	result, err := c.Handler.Update(ctx.Context(), *payload)
	return respondResult(ctx, c.Logger, result, err)
}

func (c *ClientsController) Delete(ctx router.Context) error {
	id, err := uuid.Parse(ctx.Param("id", ""))
	if err != nil {
		return ctx.JSON(router.StatusBadRequest, actions.Fail(actions.MsgInvalidFields))
	}

	result, err := c.Handler.Delete(ctx.Context(), actions.DeleteClientMessage{ID: id})
	return respondResult(ctx, c.Logger, result, err)
}

func (c *ClientsController) ListMeasurements(ctx router.Context) error {
	id, err := uuid.Parse(ctx.Param("id", ""))
	if err != nil {
		return ctx.JSON(router.StatusBadRequest, actions.Fail(actions.MsgInvalidFields))
	}

	records, err := c.Repo.Measurements().ListByClient(ctx.Context(), id)
	if err != nil {
		c.Logger.Error("measurement list failed", "error", err)
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	return ctx.JSON(router.StatusOK, records)
}

func (c *ClientsController) AddMeasurement(ctx router.Context) error {
	payload := new(actions.AddMeasurementMessage)
	if err := ctx.Bind(payload); err != nil {
		return respondBindError(ctx, c.Logger, err)
	}

	if id, err := uuid.Parse(ctx.Param("id", "")); err == nil {
		payload.ClientID = id
	}

	result, err := c.Measurements.Add(ctx.Context(), *payload)
	return respondResult(ctx, c.Logger, result, err)
}
