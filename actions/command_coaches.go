package actions

import (
	"context"
	"database/sql"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/coachdesk/coachdesk/auth"
	"github.com/coachdesk/coachdesk/store"
)

// CreateCoachMessage provisions a COACH principal together with an empty
// business profile
type CreateCoachMessage struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (e CreateCoachMessage) Type() string { return "coach.create" }

func (e CreateCoachMessage) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Name, validation.Required, validation.Length(2, 120)),
		validation.Field(&e.Email, validation.Required, is.Email),
		validation.Field(&e.Password, validation.Required, validation.Length(6, 72)),
	)
}

// DeleteCoachMessage removes a coach principal, its profile and its absences
type DeleteCoachMessage struct {
	UserID uuid.UUID `json:"user_id"`
}

func (e DeleteCoachMessage) Type() string { return "coach.delete" }

// UpdateCoachProfileMessage edits the business profile of a coach. A coach may
// edit their own profile; administrators may edit anyone's.
type UpdateCoachProfileMessage struct {
	UserID       uuid.UUID `json:"user_id"`
	HourlyRate   *float64  `json:"hourly_rate"`
	Diplomas     string    `json:"diplomas"`
	RCPInsurance string    `json:"rcp_insurance"`
	Contract     string    `json:"contract"`
	Skills       string    `json:"skills"`
	Specialties  string    `json:"specialties"`
	Bio          string    `json:"bio"`
	Phone        string    `json:"phone"`
}

func (e UpdateCoachProfileMessage) Type() string { return "coach.profile.update" }

func (e UpdateCoachProfileMessage) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.UserID, validation.Required, validation.By(requiredUUID)),
		validation.Field(&e.HourlyRate, validation.Min(0.0)),
	)
}

func requiredUUID(value interface{}) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return validation.NewError("validation_required", "cannot be blank")
	}
	return nil
}

// CoachStore is the slice of the store the handlers need
type CoachStore interface {
	RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error
	Users() auth.Users
	CoachProfiles() store.CoachProfiles
	Absences() store.Absences
}

// CoachesHandler executes coach account and profile mutations
type CoachesHandler struct {
	repo CoachStore
}

func NewCoachesHandler(repo CoachStore) *CoachesHandler {
	return &CoachesHandler{repo: repo}
}

// Create provisions the principal and the profile shell in one transaction
func (h *CoachesHandler) Create(ctx context.Context, event CreateCoachMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireAdmin(session); decision.Denied() {
		return Fail(MsgAdminOnly), nil
	}

	if err := goerrors.ValidateWithOzzo(event.Validate, "invalid coach payload"); err != nil {
		return Fail(MsgInvalidFields), nil
	}

	hash, err := auth.HashPassword(event.Password)
	if err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
	}

	user := &auth.User{
		Name:         strings.TrimSpace(event.Name),
		Email:        event.Email,
		PasswordHash: hash,
		Role:         auth.RoleCoach,
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	err = h.repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		created, err := h.repo.Users().RegisterTx(ctx, tx, user)
		if err != nil {
			return err
		}

		_, err = h.repo.CoachProfiles().CreateForUserTx(ctx, tx, created.ID)
		return err
	})
	if err != nil {
		return Fail(MsgEmailTaken), nil
	}

	return OK(MsgCoachCreated), nil
}

// Delete removes the principal and every dependent row in one transaction
func (h *CoachesHandler) Delete(ctx context.Context, event DeleteCoachMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireAdmin(session); decision.Denied() {
		return Fail(MsgAdminOnly), nil
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	err := h.repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := h.repo.Absences().DeleteByCoachIDTx(ctx, tx, event.UserID); err != nil {
			return err
		}

		if err := h.repo.CoachProfiles().DeleteByUserIDTx(ctx, tx, event.UserID); err != nil {
			return err
		}

		_, err := tx.NewDelete().
			Model(&auth.User{ID: event.UserID}).
			WherePK().
			Exec(ctx)
		return err
	})
	if err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "coach delete failed")
	}

	return OK(MsgCoachDeleted), nil
}

// UpdateProfile edits profile details, normalizing the phone number to E.164
func (h *CoachesHandler) UpdateProfile(ctx context.Context, event UpdateCoachProfileMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireSession(session); decision.Denied() {
		return Fail(MsgAuthRequired), nil
	}

	if !session.IsAdmin() && session.GetUserID() != event.UserID.String() {
		return Fail(MsgNotYourProfile), nil
	}

	if err := goerrors.ValidateWithOzzo(event.Validate, "invalid profile payload"); err != nil {
		return Fail(MsgInvalidFields), nil
	}

	record, err := h.repo.CoachProfiles().GetByUserID(ctx, event.UserID)
	if err != nil {
		if goerrors.IsNotFound(err) {
			return Fail(auth.MsgGenericError), nil
		}
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "profile lookup failed")
	}

	record.HourlyRate = event.HourlyRate
	record.Diplomas = event.Diplomas
	record.RCPInsurance = event.RCPInsurance
	record.Contract = event.Contract
	record.Skills = event.Skills
	record.Specialties = event.Specialties
	record.Bio = event.Bio
	record.Phone = normalizePhone(event.Phone)

	if _, err := h.repo.CoachProfiles().Update(ctx, record); err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "profile update failed")
	}

	return OK(MsgCoachProfileUpdated), nil
}
