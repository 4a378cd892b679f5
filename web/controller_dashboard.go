package web

import (
	"time"

	"github.com/goliatone/go-router"

	"github.com/coachdesk/coachdesk/actions"
	"github.com/coachdesk/coachdesk/auth"
	"github.com/coachdesk/coachdesk/store"
)

// DashboardController aggregates the month's numbers against the revenue goal
type DashboardController struct {
	Logger auth.Logger
	Repo   store.Manager
	Now    func() time.Time
}

func NewDashboardController(repo store.Manager, logger auth.Logger) *DashboardController {
	return &DashboardController{
		Logger: logger,
		Repo:   repo,
		Now:    time.Now,
	}
}

// DashboardView is the month summary payload
type DashboardView struct {
	MonthlyGoal    float64 `json:"monthly_goal"`
	Revenue        float64 `json:"revenue"`
	SessionCount   int     `json:"session_count"`
	CompletedCount int     `json:"completed_count"`
}

func (c *DashboardController) Summary(ctx router.Context) error {
	session := auth.SessionFromContext(ctx.Context())
	if !session.Present() {
		return ctx.JSON(router.StatusUnauthorized, actions.Fail(actions.MsgAuthRequired))
	}

	settings, err := c.Repo.Settings().Get(ctx.Context())
	if err != nil {
		c.Logger.Error("settings read failed", "error", err)
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	now := c.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)

	records, err := c.Repo.Sessions().ListBetween(ctx.Context(), from, to)
	if err != nil {
		c.Logger.Error("session range query failed", "error", err)
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	view := DashboardView{
		MonthlyGoal:  settings.MonthlyGoal,
		SessionCount: len(records),
	}

	for _, record := range records {
		if record.Status != store.SessionCompleted {
			continue
		}
		view.CompletedCount++
		if record.Service != nil {
			view.Revenue += record.Service.Price
		}
	}

	return ctx.JSON(router.StatusOK, view)
}
