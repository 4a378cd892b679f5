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

// AddMeasurementMessage records a body-composition reading for a client. Any
// signed-in user may add one; every value is optional.
type AddMeasurementMessage struct {
	ClientID   uuid.UUID `json:"client_id"`
	Weight     *float64  `json:"weight"`
	FatMass    *float64  `json:"fat_mass"`
	MuscleMass *float64  `json:"muscle_mass"`
	Date       time.Time `json:"date"`
}

func (e AddMeasurementMessage) Type() string { return "measurement.add" }

func (e AddMeasurementMessage) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.ClientID, validation.By(requiredUUID)),
		validation.Field(&e.Weight, validation.Min(0.0)),
		validation.Field(&e.FatMass, validation.Min(0.0)),
		validation.Field(&e.MuscleMass, validation.Min(0.0)),
	)
}

// MeasurementStore is the slice of the store the handler needs
type MeasurementStore interface {
	Clients() store.Clients
	Measurements() store.Measurements
}

// MeasurementsHandler records client readings
type MeasurementsHandler struct {
	repo MeasurementStore
}

func NewMeasurementsHandler(repo MeasurementStore) *MeasurementsHandler {
	return &MeasurementsHandler{repo: repo}
}

func (h *MeasurementsHandler) Add(ctx context.Context, event AddMeasurementMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireSession(session); decision.Denied() {
		return Fail(MsgAuthRequired), nil
	}

	if err := goerrors.ValidateWithOzzo(event.Validate, "invalid measurement payload"); err != nil {
		return Fail(MsgInvalidFields), nil
	}

	if _, err := h.repo.Clients().GetByID(ctx, event.ClientID.String()); err != nil {
		if goerrors.IsNotFound(err) {
			return Fail(MsgClientNotFound), nil
		}
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "client lookup failed")
	}

	record := &store.Measurement{
		ClientID:   event.ClientID,
		Weight:     event.Weight,
		FatMass:    event.FatMass,
		MuscleMass: event.MuscleMass,
		Date:       event.Date,
	}

	if _, err := h.repo.Measurements().Add(ctx, record); err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "measurement create failed")
	}

	return OK(MsgMeasurementAdded), nil
}
