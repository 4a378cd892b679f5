package store

import (
	"context"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Sessions is the training session calendar
type Sessions interface {
	repository.Repository[*TrainingSession]

	List(ctx context.Context) ([]*TrainingSession, error)
	ListByCoach(ctx context.Context, coachID uuid.UUID) ([]*TrainingSession, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*TrainingSession, error)
	GetDetailed(ctx context.Context, id uuid.UUID) (*TrainingSession, error)
	Schedule(ctx context.Context, record *TrainingSession) (*TrainingSession, error)
	SetStatus(ctx context.Context, id uuid.UUID, status SessionStatus) (*TrainingSession, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type sessions struct {
	repository.Repository[*TrainingSession]
	db *bun.DB
}

var _ Sessions = (*sessions)(nil)

// NewSessionsRepository builds the training session repository over bun
func NewSessionsRepository(db *bun.DB) Sessions {
	repo := repository.NewRepository[*TrainingSession](db, repository.ModelHandlers[*TrainingSession]{
		NewRecord: func() *TrainingSession { return &TrainingSession{} },
		GetID: func(s *TrainingSession) uuid.UUID {
			if s == nil {
				return uuid.Nil
			}
			return s.ID
		},
		SetID: func(s *TrainingSession, id uuid.UUID) {
			if s != nil {
				s.ID = id
			}
		},
		GetIdentifier: func() string {
			return "id"
		},
	})

	return &sessions{
		Repository: repo,
		db:         db,
	}
}

func (r *sessions) List(ctx context.Context) ([]*TrainingSession, error) {
	var records []*TrainingSession
	err := r.db.NewSelect().
		Model(&records).
		Relation("Client").
		Relation("Coach").
		Relation("Service").
		Order("tse.date DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *sessions) ListByCoach(ctx context.Context, coachID uuid.UUID) ([]*TrainingSession, error) {
	var records []*TrainingSession
	err := r.db.NewSelect().
		Model(&records).
		Relation("Client").
		Relation("Service").
		Where("tse.coach_id = ?", coachID).
		Order("tse.date DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *sessions) ListBetween(ctx context.Context, from, to time.Time) ([]*TrainingSession, error) {
	var records []*TrainingSession
	err := r.db.NewSelect().
		Model(&records).
		Relation("Service").
		Where("tse.date >= ?", from).
		Where("tse.date < ?", to).
		Order("tse.date ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetDetailed loads one session with its client, coach and service rows
func (r *sessions) GetDetailed(ctx context.Context, id uuid.UUID) (*TrainingSession, error) {
	record := &TrainingSession{}
	err := r.db.NewSelect().
		Model(record).
		Relation("Client").
		Relation("Coach").
		Relation("Service").
		Where("tse.id = ?", id).
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

func (r *sessions) Schedule(ctx context.Context, record *TrainingSession) (*TrainingSession, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.Status == "" {
		record.Status = SessionPlanned
	}
	return r.Repository.CreateTx(ctx, r.db, record)
}

func (r *sessions) SetStatus(ctx context.Context, id uuid.UUID, status SessionStatus) (*TrainingSession, error) {
	record, err := r.Repository.GetByID(ctx, id.String())
	if err != nil {
		return nil, err
	}

	record.Status = status
	return r.Repository.Update(ctx, record, repository.UpdateByID(id.String()))
}

func (r *sessions) DeleteByID(ctx context.Context, id uuid.UUID) error {
	record := &TrainingSession{ID: id}
	_, err := r.db.NewDelete().
		Model(record).
		WherePK().
		Exec(ctx)
	return err
}
