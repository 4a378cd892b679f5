package actions

import (
	"context"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk/auth"
	"github.com/coachdesk/coachdesk/store"
)

// ClientFields is the editable payload shared by create and update
type ClientFields struct {
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address"`
	BirthDate        *time.Time `json:"birth_date"`
	Height           *float64   `json:"height"`
	Pathology        string     `json:"pathology"`
	Goals            string     `json:"goals"`
	EmergencyContact string     `json:"emergency_contact"`
	Notes            string     `json:"notes"`
}

func (f ClientFields) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.Length(2, 120)),
		validation.Field(&f.Email, is.Email),
	)
}

func (f ClientFields) apply(record *store.Client) {
	record.Name = strings.TrimSpace(f.Name)
	record.Email = f.Email
	record.Phone = normalizePhone(f.Phone)
	record.Address = f.Address
	record.BirthDate = f.BirthDate
	record.Height = f.Height
	record.Pathology = f.Pathology
	record.Goals = f.Goals
	record.EmergencyContact = f.EmergencyContact
	record.Notes = f.Notes
}

// CreateClientMessage adds a client to the roster; any signed-in user may do it
type CreateClientMessage struct {
	ClientFields
}

func (e CreateClientMessage) Type() string { return "client.create" }

// UpdateClientMessage edits a client record; administrators only
type UpdateClientMessage struct {
	ID uuid.UUID `json:"id"`
	ClientFields
}

func (e UpdateClientMessage) Type() string { return "client.update" }

// DeleteClientMessage removes a client; administrators only
type DeleteClientMessage struct {
	ID uuid.UUID `json:"id"`
}

func (e DeleteClientMessage) Type() string { return "client.delete" }

// ClientStore is the slice of the store the handlers need
type ClientStore interface {
	Clients() store.Clients
}

// ClientsHandler executes client roster mutations
type ClientsHandler struct {
	repo ClientStore
}

func NewClientsHandler(repo ClientStore) *ClientsHandler {
	return &ClientsHandler{repo: repo}
}

func (h *ClientsHandler) Create(ctx context.Context, event CreateClientMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireSession(session); decision.Denied() {
		return Fail(MsgAuthRequired), nil
	}

	if err := goerrors.ValidateWithOzzo(event.Validate, "invalid client payload"); err != nil {
		return Fail(MsgInvalidFields), nil
	}

	record := &store.Client{}
	event.apply(record)

	if _, err := h.repo.Clients().Create(ctx, record); err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "client create failed")
	}

	return OK(MsgClientCreated), nil
}

func (h *ClientsHandler) Update(ctx context.Context, event UpdateClientMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireAdmin(session); decision.Denied() {
		return Fail(MsgAdminOnly), nil
	}

	if err := goerrors.ValidateWithOzzo(event.Validate, "invalid client payload"); err != nil {
		return Fail(MsgInvalidFields), nil
	}

	record, err := h.repo.Clients().GetByID(ctx, event.ID.String())
	if err != nil {
		if goerrors.IsNotFound(err) {
			return Fail(auth.MsgGenericError), nil
		}
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "client lookup failed")
	}

	event.apply(record)

	if _, err := h.repo.Clients().Update(ctx, record); err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "client update failed")
	}

	return OK(MsgClientUpdated), nil
}

func (h *ClientsHandler) Delete(ctx context.Context, event DeleteClientMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireAdmin(session); decision.Denied() {
		return Fail(MsgAdminOnly), nil
	}

	if err := h.repo.Clients().DeleteByID(ctx, event.ID); err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "client delete failed")
	}

	return OK(MsgClientDeleted), nil
}
