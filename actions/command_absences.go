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

// DeclareAbsenceMessage reports a coach unavailability window. A coach may
// only declare for themself; administrators may declare for anyone and their
// declarations are approved on the spot.
type DeclareAbsenceMessage struct {
	CoachID   uuid.UUID `json:"coach_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Reason    string    `json:"reason"`
	Kind      string    `json:"type"`
}

func (e DeclareAbsenceMessage) Type() string { return "absence.declare" }

func (e DeclareAbsenceMessage) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.CoachID, validation.By(requiredUUID)),
		validation.Field(&e.StartDate, validation.Required),
		validation.Field(&e.EndDate, validation.Required, validation.By(func(value interface{}) error {
			end, _ := value.(time.Time)
			if end.Before(e.StartDate) {
				return validation.NewError("validation_date_order", "must not be before the start date")
			}
			return nil
		})),
		validation.Field(&e.Kind, validation.Required, validation.In(
			store.AbsenceLeave,
			store.AbsenceSickness,
			store.AbsenceOther,
		)),
	)
}

// ReviewAbsenceMessage approves or refuses a pending absence
type ReviewAbsenceMessage struct {
	ID      uuid.UUID `json:"id"`
	Approve bool      `json:"approve"`
}

func (e ReviewAbsenceMessage) Type() string { return "absence.review" }

// DeleteAbsenceMessage removes an absence. A coach may delete their own
// pending ones; administrators may delete any.
type DeleteAbsenceMessage struct {
	ID uuid.UUID `json:"id"`
}

func (e DeleteAbsenceMessage) Type() string { return "absence.delete" }

// AbsenceStore is the slice of the store the handlers need
type AbsenceStore interface {
	Absences() store.Absences
}

// AbsencesHandler executes absence mutations
type AbsencesHandler struct {
	repo AbsenceStore
}

func NewAbsencesHandler(repo AbsenceStore) *AbsencesHandler {
	return &AbsencesHandler{repo: repo}
}

func (h *AbsencesHandler) Declare(ctx context.Context, event DeclareAbsenceMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireSession(session); decision.Denied() {
		return Fail(MsgAuthRequired), nil
	}

	if !session.IsAdmin() && session.GetUserID() != event.CoachID.String() {
		return Fail(MsgNotYourAbsence), nil
	}

	if err := goerrors.ValidateWithOzzo(event.Validate, "invalid absence payload"); err != nil {
		return Fail(MsgInvalidFields), nil
	}

	status := store.AbsencePending
	if session.IsAdmin() {
		status = store.AbsenceApproved
	}

	record := &store.Absence{
		CoachID:   event.CoachID,
		StartDate: event.StartDate,
		EndDate:   event.EndDate,
		Reason:    event.Reason,
		Type:      event.Kind,
		Status:    status,
	}

	if _, err := h.repo.Absences().Declare(ctx, record); err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "absence declare failed")
	}

	return OK(MsgAbsenceDeclared), nil
}

func (h *AbsencesHandler) Review(ctx context.Context, event ReviewAbsenceMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireAdmin(session); decision.Denied() {
		return Fail(MsgAdminOnly), nil
	}

	status := store.AbsenceRefused
	if event.Approve {
		status = store.AbsenceApproved
	}

	if _, err := h.repo.Absences().SetStatus(ctx, event.ID, status); err != nil {
		if goerrors.IsNotFound(err) {
			return Fail(auth.MsgGenericError), nil
		}
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "absence review failed")
	}

	return OK(MsgAbsenceReviewed), nil
}

func (h *AbsencesHandler) Delete(ctx context.Context, event DeleteAbsenceMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireSession(session); decision.Denied() {
		return Fail(MsgAuthRequired), nil
	}

	record, err := h.repo.Absences().GetByID(ctx, event.ID.String())
	if err != nil {
		if goerrors.IsNotFound(err) {
			return Fail(auth.MsgGenericError), nil
		}
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "absence lookup failed")
	}

	if !session.IsAdmin() {
		owned := session.GetUserID() == record.CoachID.String()
		if !owned || record.Status != store.AbsencePending {
			return Fail(MsgNotYourAbsence), nil
		}
	}

	if err := h.repo.Absences().DeleteByID(ctx, event.ID); err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "absence delete failed")
	}

	return OK(MsgAbsenceDeleted), nil
}
