package actions

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk/auth"
	"github.com/coachdesk/coachdesk/store"
)

// ScheduleSessionMessage books a training session. A coach may schedule their
// own sessions; administrators may schedule for any coach.
type ScheduleSessionMessage struct {
	Date      time.Time `json:"date"`
	ClientID  uuid.UUID `json:"client_id"`
	CoachID   uuid.UUID `json:"coach_id"`
	ServiceID uuid.UUID `json:"service_id"`
	Notes     string    `json:"notes"`
}

func (e ScheduleSessionMessage) Type() string { return "session.schedule" }

func (e ScheduleSessionMessage) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Date, validation.Required),
		validation.Field(&e.ClientID, validation.By(requiredUUID)),
		validation.Field(&e.CoachID, validation.By(requiredUUID)),
		validation.Field(&e.ServiceID, validation.By(requiredUUID)),
	)
}

// SetSessionStatusMessage moves a session through its lifecycle
type SetSessionStatusMessage struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

func (e SetSessionStatusMessage) Type() string { return "session.status" }

func (e SetSessionStatusMessage) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.ID, validation.By(requiredUUID)),
		validation.Field(&e.Status, validation.Required, validation.In(
			store.SessionPlanned,
			store.SessionCompleted,
			store.SessionCancelled,
		)),
	)
}

// DeleteSessionMessage removes a session from the calendar, administrators only
type DeleteSessionMessage struct {
	ID uuid.UUID `json:"id"`
}

func (e DeleteSessionMessage) Type() string { return "session.delete" }

// SessionStore is the slice of the store the handlers need
type SessionStore interface {
	Sessions() store.Sessions
}

// SessionsHandler executes training calendar mutations
type SessionsHandler struct {
	repo SessionStore
}

func NewSessionsHandler(repo SessionStore) *SessionsHandler {
	return &SessionsHandler{repo: repo}
}

func (h *SessionsHandler) Schedule(ctx context.Context, event ScheduleSessionMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireSession(session); decision.Denied() {
		return Fail(MsgAuthRequired), nil
	}

	if !session.IsAdmin() && session.GetUserID() != event.CoachID.String() {
		return Fail(MsgNotYourSession), nil
	}

	if err := goerrors.ValidateWithOzzo(event.Validate, "invalid session payload"); err != nil {
		return Fail(MsgInvalidFields), nil
	}

	record := &store.TrainingSession{
		Date:      event.Date,
		ClientID:  event.ClientID,
		CoachID:   event.CoachID,
		ServiceID: event.ServiceID,
		Notes:     event.Notes,
	}

	if _, err := h.repo.Sessions().Schedule(ctx, record); err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "session schedule failed")
	}

	return OK(MsgSessionScheduled), nil
}

func (h *SessionsHandler) SetStatus(ctx context.Context, event SetSessionStatusMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireSession(session); decision.Denied() {
		return Fail(MsgAuthRequired), nil
	}

	if err := goerrors.ValidateWithOzzo(event.Validate, "invalid session payload"); err != nil {
		return Fail(MsgInvalidFields), nil
	}

	record, err := h.repo.Sessions().GetByID(ctx, event.ID.String())
	if err != nil {
		if goerrors.IsNotFound(err) {
			return Fail(auth.MsgGenericError), nil
		}
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "session lookup failed")
	}

	if !session.IsAdmin() && session.GetUserID() != record.CoachID.String() {
		return Fail(MsgNotYourSession), nil
	}

	if _, err := h.repo.Sessions().SetStatus(ctx, event.ID, event.Status); err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "session status update failed")
	}

	return OK(MsgSessionUpdated), nil
}

func (h *SessionsHandler) Delete(ctx context.Context, event DeleteSessionMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireAdmin(session); decision.Denied() {
		return Fail(MsgAdminOnly), nil
	}

	if err := h.repo.Sessions().DeleteByID(ctx, event.ID); err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "session delete failed")
	}

	return OK(MsgSessionDeleted), nil
}
