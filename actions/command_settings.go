package actions

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
	goerrors "github.com/goliatone/go-errors"

	"github.com/coachdesk/coachdesk/auth"
	"github.com/coachdesk/coachdesk/store"
)

// UpdateSettingsMessage changes the monthly revenue objective
type UpdateSettingsMessage struct {
	MonthlyGoal float64 `json:"monthly_goal"`
}

func (e UpdateSettingsMessage) Type() string { return "settings.update" }

func (e UpdateSettingsMessage) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.MonthlyGoal, validation.Min(0.0)),
	)
}

// SettingsStore is the slice of the store the handler needs
type SettingsStore interface {
	Settings() store.Settings
}

// SettingsHandler updates the global settings row. Any signed-in user may do
// it, matching the original product behavior.
type SettingsHandler struct {
	repo SettingsStore
}

func NewSettingsHandler(repo SettingsStore) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

func (h *SettingsHandler) Update(ctx context.Context, event UpdateSettingsMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireSession(session); decision.Denied() {
		return Fail(MsgAuthRequired), nil
	}

	if err := goerrors.ValidateWithOzzo(event.Validate, "invalid settings payload"); err != nil {
		return Fail(MsgInvalidFields), nil
	}

	if _, err := h.repo.Settings().Upsert(ctx, event.MonthlyGoal); err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "settings update failed")
	}

	return OK(MsgSettingsUpdated), nil
}
