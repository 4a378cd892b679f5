package web

import (
	"github.com/goliatone/go-router"

	"github.com/coachdesk/coachdesk/actions"
	"github.com/coachdesk/coachdesk/auth"
)

// respondResult translates an operation outcome into the UI contract: denials
// and validation failures travel as 200 + success:false so the client renders
// the message inline; only infrastructure failures surface as 500.
func respondResult(ctx router.Context, logger auth.Logger, result actions.Result, err error) error {
	if err != nil {
		logger.Error("operation failed", "error", err)
		return ctx.JSON(router.StatusInternalServerError, actions.Fail(auth.MsgGenericError))
	}

	return ctx.JSON(router.StatusOK, result)
}

func respondBindError(ctx router.Context, logger auth.Logger, err error) error {
	logger.Debug("payload bind failed", "error", err)
	return ctx.JSON(router.StatusBadRequest, actions.Fail(actions.MsgInvalidFields))
}
