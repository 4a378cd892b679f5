package actions

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/coachdesk/coachdesk/auth"
	"github.com/coachdesk/coachdesk/store"
)

// changeRequestNotice is the shortest a coach can ask for a change before
// the session starts
const changeRequestNotice = 24 * time.Hour

// CreateChangeRequestMessage asks for a session to be cancelled or moved.
// The session's coach may ask for their own sessions; administrators for any.
type CreateChangeRequestMessage struct {
	SessionID uuid.UUID  `json:"session_id"`
	Kind      string     `json:"kind"`
	Reason    string     `json:"reason"`
	NewDate   *time.Time `json:"new_date"`
}

func (e CreateChangeRequestMessage) Type() string { return "session.request.create" }

func (e CreateChangeRequestMessage) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.SessionID, validation.By(requiredUUID)),
		validation.Field(&e.Kind, validation.Required, validation.In(
			store.ChangeRequestCancel,
			store.ChangeRequestReschedule,
		)),
		validation.Field(&e.Reason, validation.Required),
		validation.Field(&e.NewDate, validation.By(func(interface{}) error {
			if e.Kind == store.ChangeRequestReschedule && e.NewDate == nil {
				return validation.NewError("validation_required", "cannot be blank")
			}
			return nil
		})),
	)
}

// RespondChangeRequestMessage is the administrator's decision on a pending
// request. Approving applies the change to the session itself.
type RespondChangeRequestMessage struct {
	ID       uuid.UUID `json:"id"`
	Approve  bool      `json:"approve"`
	Response string    `json:"response"`
}

func (e RespondChangeRequestMessage) Type() string { return "session.request.respond" }

// MarkNotificationReadMessage flips one notification of the caller's inbox
type MarkNotificationReadMessage struct {
	ID uuid.UUID `json:"id"`
}

func (e MarkNotificationReadMessage) Type() string { return "notification.read" }

// RequestStore is the slice of the store the handlers need
type RequestStore interface {
	RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error
	Users() auth.Users
	Sessions() store.Sessions
	ChangeRequests() store.ChangeRequests
	Notifications() store.Notifications
}

// RequestsHandler executes change request and notification mutations
type RequestsHandler struct {
	repo RequestStore
}

func NewRequestsHandler(repo RequestStore) *RequestsHandler {
	return &RequestsHandler{repo: repo}
}

// Create files the request and notifies every administrator in one
// transaction
func (h *RequestsHandler) Create(ctx context.Context, event CreateChangeRequestMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireSession(session); decision.Denied() {
		return Fail(MsgAuthRequired), nil
	}

	if err := goerrors.ValidateWithOzzo(event.Validate, "invalid change request payload"); err != nil {
		return Fail(MsgInvalidFields), nil
	}

	target, err := h.repo.Sessions().GetDetailed(ctx, event.SessionID)
	if err != nil {
		if goerrors.IsNotFound(err) {
			return Fail(MsgSessionNotFound), nil
		}
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "session lookup failed")
	}

	if !session.IsAdmin() && session.GetUserID() != target.CoachID.String() {
		return Fail(MsgNotYourSession), nil
	}

	if time.Until(target.Date) < changeRequestNotice {
		return Fail(MsgRequestTooLate), nil
	}

	pending, err := h.repo.ChangeRequests().PendingExistsForSession(ctx, event.SessionID)
	if err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "pending request lookup failed")
	}
	if pending {
		return Fail(MsgRequestAlreadyPending), nil
	}

	requester, err := session.GetUserUUID()
	if err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "invalid session subject")
	}

	record := &store.SessionChangeRequest{
		ID:        uuid.New(),
		SessionID: event.SessionID,
		CoachID:   requester,
		Type:      event.Kind,
		Reason:    event.Reason,
		Status:    store.RequestPending,
	}
	if event.Kind == store.ChangeRequestReschedule {
		record.NewDate = event.NewDate
	}

	admins, err := h.repo.Users().ListByRole(ctx, auth.RoleAdmin)
	if err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "admin list failed")
	}

	title, message := requestNotice(event.Kind, target)

	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	err = h.repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := h.repo.ChangeRequests().CreateTx(ctx, tx, record); err != nil {
			return err
		}

		for _, admin := range admins {
			_, err := h.repo.Notifications().NotifyTx(ctx, tx, &store.Notification{
				UserID:  admin.ID,
				Type:    store.NotificationRequestNew,
				Title:   title,
				Message: message,
				Link:    "/admin/requests",
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "change request create failed")
	}

	return OK(MsgRequestSent), nil
}

// Respond records the decision, applies approved changes to the session and
// notifies the requesting coach, all in one transaction
func (h *RequestsHandler) Respond(ctx context.Context, event RespondChangeRequestMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireAdmin(session); decision.Denied() {
		return Fail(MsgAdminOnly), nil
	}

	request, err := h.repo.ChangeRequests().GetDetailed(ctx, event.ID)
	if err != nil {
		if goerrors.IsNotFound(err) {
			return Fail(MsgRequestNotFound), nil
		}
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "request lookup failed")
	}

	if request.Status != store.RequestPending {
		return Fail(MsgRequestAlreadyDone), nil
	}

	request.Status = store.RequestRejected
	if event.Approve {
		request.Status = store.RequestApproved
	}
	request.AdminResponse = event.Response
	now := time.Now()
	request.RespondedAt = &now

	title, message := decisionNotice(request, event.Approve)

	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	err = h.repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := h.repo.ChangeRequests().UpdateTx(ctx, tx, request, repository.UpdateByID(request.ID.String())); err != nil {
			return err
		}

		if event.Approve {
			target, err := h.repo.Sessions().GetByID(ctx, request.SessionID.String())
			if err != nil {
				return err
			}

			switch request.Type {
			case store.ChangeRequestCancel:
				target.Status = store.SessionCancelled
			case store.ChangeRequestReschedule:
				if request.NewDate != nil {
					target.Date = *request.NewDate
				}
			}

			if _, err := h.repo.Sessions().UpdateTx(ctx, tx, target, repository.UpdateByID(target.ID.String())); err != nil {
				return err
			}
		}

		kind := store.NotificationRequestRejected
		if event.Approve {
			kind = store.NotificationRequestApproved
		}

		_, err := h.repo.Notifications().NotifyTx(ctx, tx, &store.Notification{
			UserID:  request.CoachID,
			Type:    kind,
			Title:   title,
			Message: message,
			Link:    "/planning",
		})
		return err
	})
	if err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "change request respond failed")
	}

	if event.Approve {
		return OK(MsgRequestApproved), nil
	}
	return OK(MsgRequestRejected), nil
}

// MarkRead flips one notification; the repository scopes the write to the
// caller so someone else's id is a no-op
func (h *RequestsHandler) MarkRead(ctx context.Context, event MarkNotificationReadMessage) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireSession(session); decision.Denied() {
		return Fail(MsgAuthRequired), nil
	}

	userID, err := session.GetUserUUID()
	if err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "invalid session subject")
	}

	if err := h.repo.Notifications().MarkRead(ctx, event.ID, userID); err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "notification update failed")
	}

	return OK(""), nil
}

// MarkAllRead clears the caller's unread counter
func (h *RequestsHandler) MarkAllRead(ctx context.Context) (Result, error) {
	session := auth.SessionFromContext(ctx)
	if decision := auth.RequireSession(session); decision.Denied() {
		return Fail(MsgAuthRequired), nil
	}

	userID, err := session.GetUserUUID()
	if err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "invalid session subject")
	}

	if err := h.repo.Notifications().MarkAllRead(ctx, userID); err != nil {
		return Fail(auth.MsgGenericError), goerrors.Wrap(err, goerrors.CategoryInternal, "notification update failed")
	}

	return OK(""), nil
}

func requestNotice(kind store.ChangeRequestType, target *store.TrainingSession) (string, string) {
	coach := userLabel(target.Coach)
	client := "?"
	if target.Client != nil {
		client = target.Client.Name
	}
	service := "?"
	if target.Service != nil {
		service = target.Service.Name
	}

	if kind == store.ChangeRequestCancel {
		return "Demande d'annulation",
			fmt.Sprintf("%s demande l'annulation de la séance avec %s (%s).", coach, client, service)
	}
	return "Demande de report",
		fmt.Sprintf("%s demande le report de la séance avec %s (%s).", coach, client, service)
}

func decisionNotice(request *store.SessionChangeRequest, approved bool) (string, string) {
	typeLabel := "de report"
	if request.Type == store.ChangeRequestCancel {
		typeLabel = "d'annulation"
	}

	statusLabel := "refusée"
	if approved {
		statusLabel = "acceptée"
	}

	client := "?"
	if request.Session != nil && request.Session.Client != nil {
		client = request.Session.Client.Name
	}

	message := fmt.Sprintf("Votre demande %s pour la séance avec %s a été %s.", typeLabel, client, statusLabel)
	if request.AdminResponse != "" {
		message += fmt.Sprintf(" Réponse : %s", request.AdminResponse)
	}

	return fmt.Sprintf("Demande %s", statusLabel), message
}

func userLabel(u *auth.User) string {
	if u == nil {
		return "?"
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
