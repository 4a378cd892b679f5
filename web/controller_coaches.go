package web

import (
	"github.com/goliatone/go-router"
	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk/actions"
	"github.com/coachdesk/coachdesk/auth"
	"github.com/coachdesk/coachdesk/store"
)

// CoachesController serves coach accounts, profiles and absences
type CoachesController struct {
	Logger   auth.Logger
	Repo     store.Manager
	Coaches  *actions.CoachesHandler
	Absences *actions.AbsencesHandler
}

func NewCoachesController(repo store.Manager, logger auth.Logger) *CoachesController {
	return &CoachesController{
		Logger:   logger,
		Repo:     repo,
		Coaches:  actions.NewCoachesHandler(repo),
		Absences: actions.NewAbsencesHandler(repo),
	}
}

// coachView joins the principal with its business profile
type coachView struct {
	User    *auth.User          `json:"user"`
	Profile *store.CoachProfile `json:"profile,omitempty"`
}

func (c *CoachesController) List(ctx router.Context) error {
	users, err := c.Repo.Users().ListByRole(ctx.Context(), auth.RoleCoach)
	if err != nil {
		c.Logger.Error("coach list failed", "error", err)
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	views := make([]coachView, 0, len(users))
	for _, user := range users {
		view := coachView{User: user}
		if profile, err := c.Repo.CoachProfiles().GetByUserID(ctx.Context(), user.ID); err == nil {
			view.Profile = profile
		}
		views = append(views, view)
	}

	return ctx.JSON(router.StatusOK, views)
}

func (c *CoachesController) Create(ctx router.Context) error {
	payload := new(actions.CreateCoachMessage)
	if err := ctx.Bind(payload); err != nil {
		return respondBindError(ctx, c.Logger, err)
	}

	result, err := c.Coaches.Create(ctx.Context(), *payload)
	return respondResult(ctx, c.Logger, result, err)
}

func (c *CoachesController) Delete(ctx router.Context) error {
	id, err := uuid.Parse(ctx.Param("id", ""))
	if err != nil {
		return ctx.JSON(router.StatusBadRequest, actions.Fail(actions.MsgInvalidFields))
	}

	result, err := c.Coaches.Delete(ctx.Context(), actions.DeleteCoachMessage{UserID: id})
	return respondResult(ctx, c.Logger, result, err)
}

func (c *CoachesController) UpdateProfile(ctx router.Context) error {
	payload := new(actions.UpdateCoachProfileMessage)
	if err := ctx.Bind(payload); err != nil {
		return respondBindError(ctx, c.Logger, err)
	}

	if id, err := uuid.Parse(ctx.Param("id", "")); err == nil {
		payload.UserID = id
	}

	result, err := c.Coaches.UpdateProfile(ctx.Context(), *payload)
	return respondResult(ctx, c.Logger, result, err)
}

// ListAbsences returns every absence for administrators and the caller's own
// for coaches
func (c *CoachesController) ListAbsences(ctx router.Context) error {
	session := auth.SessionFromContext(ctx.Context())
	if !session.Present() {
		return ctx.JSON(router.StatusUnauthorized, actions.Fail(actions.MsgAuthRequired))
	}

	if session.IsAdmin() {
		records, err := c.Repo.Absences().List(ctx.Context())
		if err != nil {
			c.Logger.Error("absence list failed", "error", err)
			return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
		}
		return ctx.JSON(router.StatusOK, records)
	}

	coachID, err := session.GetUserUUID()
	if err != nil {
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	records, err := c.Repo.Absences().ListByCoach(ctx.Context(), coachID)
	if err != nil {
		c.Logger.Error("absence list failed", "error", err)
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	return ctx.JSON(router.StatusOK, records)
}

func (c *CoachesController) DeclareAbsence(ctx router.Context) error {
	payload := new(actions.DeclareAbsenceMessage)
	if err := ctx.Bind(payload); err != nil {
		return respondBindError(ctx, c.Logger, err)
	}

	result, err := c.Absences.Declare(ctx.Context(), *payload)
	return respondResult(ctx, c.Logger, result, err)
}

func (c *CoachesController) ReviewAbsence(ctx router.Context) error {
	payload := new(actions.ReviewAbsenceMessage)
	if err := ctx.Bind(payload); err != nil {
		return respondBindError(ctx, c.Logger, err)
	}

	if id, err := uuid.Parse(ctx.Param("id", "")); err == nil {
		payload.ID = id
	}

	result, err := c.Absences.Review(ctx.Context(), *payload)
	return respondResult(ctx, c.Logger, result, err)
}

func (c *CoachesController) DeleteAbsence(ctx router.Context) error {
	id, err := uuid.Parse(ctx.Param("id", ""))
	if err != nil {
		return ctx.JSON(router.StatusBadRequest, actions.Fail(actions.MsgInvalidFields))
	}

	result, err := c.Absences.Delete(ctx.Context(), actions.DeleteAbsenceMessage{ID: id})
	return respondResult(ctx, c.Logger, result, err)
}
