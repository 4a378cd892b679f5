package actions

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk/auth"
	"github.com/coachdesk/coachdesk/store"
)

// CreateServiceMessage adds a billable offering to the catalog
type CreateServiceMessage struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

func (e CreateServiceMessage) Type() string { return "service.create" }

func (e CreateServiceMessage) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Name, validation.Required, validation.Length(2, 120)),
		validation.Field(&e.Price, validation.Min(0.0)),
		validation.Field(&e.DurationMinutes, validation.Required, validation.Min(1)),
	)
}

// DeleteServiceMessage removes an offering from the catalog
type DeleteServiceMessage struct {
	ID uuid.UUID `json:"id"`
}

func (e DeleteServiceMessage) Type() string { return "service.delete" }

// ServiceStore is the slice of the store the handlers need
type ServiceStore interface {
	Services() store.Services
}

// ServicesHandler executes catalog mutations, administrators only
type ServicesHandler struct {
	repo ServiceStore
}

func NewServicesHandler(repo ServiceStore) *ServicesHandler {
	return &ServicesHandler{repo: repo}
}

func (h *ServicesHandler) Create(ctx context.Context, event CreateServiceMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireAdmin(session); decision.Denied() {
		return Fail(MsgAdminOnly), nil
	}

	if err := goerrors.ValidateWithOzzo(event.Validate, "invalid service payload"); err != nil {
		return Fail(MsgInvalidFields), nil
	}

	record := &store.Service{
		Name:            strings.TrimSpace(event.Name),
		Description:     event.Description,
		Price:           event.Price,
		DurationMinutes: event.DurationMinutes,
	}

	if _, err := h.repo.Services().Create(ctx, record); err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "service create failed")
	}

	return OK(MsgServiceCreated), nil
}

func (h *ServicesHandler) Delete(ctx context.Context, event DeleteServiceMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireAdmin(session); decision.Denied() {
		return Fail(MsgAdminOnly), nil
	}

	if err := h.repo.Services().DeleteByID(ctx, event.ID); err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "service delete failed")
	}

	return OK(MsgServiceDeleted), nil
}
