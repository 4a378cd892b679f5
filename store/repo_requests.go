package store

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ChangeRequests stores session cancel/reschedule requests
type ChangeRequests interface {
	repository.Repository[*SessionChangeRequest]

	ListPending(ctx context.Context) ([]*SessionChangeRequest, error)
	ListByCoach(ctx context.Context, coachID uuid.UUID) ([]*SessionChangeRequest, error)
	GetDetailed(ctx context.Context, id uuid.UUID) (*SessionChangeRequest, error)
	PendingExistsForSession(ctx context.Context, sessionID uuid.UUID) (bool, error)
}

type changeRequests struct {
	repository.Repository[*SessionChangeRequest]
	db *bun.DB
}

var _ ChangeRequests = (*changeRequests)(nil)

// NewChangeRequestsRepository builds the change request repository over bun
func NewChangeRequestsRepository(db *bun.DB) ChangeRequests {
	repo := repository.NewRepository[*SessionChangeRequest](db, repository.ModelHandlers[*SessionChangeRequest]{
		NewRecord: func() *SessionChangeRequest { return &SessionChangeRequest{} },
		GetID: func(r *SessionChangeRequest) uuid.UUID {
			if r == nil {
				return uuid.Nil
			}
			return r.ID
		},
		SetID: func(r *SessionChangeRequest, id uuid.UUID) {
			if r != nil {
				r.ID = id
			}
		},
		GetIdentifier: func() string {
			return "id"
		},
	})

	return &changeRequests{
		Repository: repo,
		db:         db,
	}
}

func (r *changeRequests) ListPending(ctx context.Context) ([]*SessionChangeRequest, error) {
	var records []*SessionChangeRequest
	err := r.db.NewSelect().
		Model(&records).
		Relation("Session").
		Relation("Session.Client").
		Relation("Session.Service").
		Relation("Coach").
		Where("scr.status = ?", RequestPending).
		Order("scr.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *changeRequests) ListByCoach(ctx context.Context, coachID uuid.UUID) ([]*SessionChangeRequest, error) {
	var records []*SessionChangeRequest
	err := r.db.NewSelect().
		Model(&records).
		Relation("Session").
		Relation("Session.Client").
		Relation("Session.Service").
		Where("scr.coach_id = ?", coachID).
		Order("scr.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetDetailed loads a request together with its session and the session's
// client, for notification copy
func (r *changeRequests) GetDetailed(ctx context.Context, id uuid.UUID) (*SessionChangeRequest, error) {
	record := &SessionChangeRequest{}
	err := r.db.NewSelect().
		Model(record).
		Relation("Session").
		Relation("Session.Client").
		Where("scr.id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{"id": id.String()})
		}
		return nil, err
	}

	return record, nil
}

func (r *changeRequests) PendingExistsForSession(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	return r.db.NewSelect().
		Model((*SessionChangeRequest)(nil)).
		Where("scr.session_id = ?", sessionID).
		Where("scr.status = ?", RequestPending).
		Exists(ctx)
}
