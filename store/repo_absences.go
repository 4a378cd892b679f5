package store

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Absences stores coach unavailability windows
type Absences interface {
	repository.Repository[*Absence]

	List(ctx context.Context) ([]*Absence, error)
	ListByCoach(ctx context.Context, coachID uuid.UUID) ([]*Absence, error)
	ListPending(ctx context.Context) ([]*Absence, error)
	Declare(ctx context.Context, record *Absence) (*Absence, error)
	SetStatus(ctx context.Context, id uuid.UUID, status AbsenceStatus) (*Absence, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteByCoachIDTx(ctx context.Context, tx bun.IDB, coachID uuid.UUID) error
}

type absences struct {
	repository.Repository[*Absence]
	db *bun.DB
}

var _ Absences = (*absences)(nil)

// NewAbsencesRepository builds the absence repository over bun
func NewAbsencesRepository(db *bun.DB) Absences {
	repo := repository.NewRepository[*Absence](db, repository.ModelHandlers[*Absence]{
		NewRecord: func() *Absence { return &Absence{} },
		GetID: func(a *Absence) uuid.UUID {
			if a == nil {
				return uuid.Nil
			}
			return a.ID
		},
		SetID: func(a *Absence, id uuid.UUID) {
			if a != nil {
				a.ID = id
			}
		},
		GetIdentifier: func() string {
			return "id"
		},
	})

	return &absences{
		Repository: repo,
		db:         db,
	}
}

func (r *absences) List(ctx context.Context) ([]*Absence, error) {
	var records []*Absence
	err := r.db.NewSelect().
		Model(&records).
		Relation("Coach").
		Order("abs.start_date DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *absences) ListByCoach(ctx context.Context, coachID uuid.UUID) ([]*Absence, error) {
	var records []*Absence
	err := r.db.NewSelect().
		Model(&records).
		Where("abs.coach_id = ?", coachID).
		Order("abs.start_date DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *absences) ListPending(ctx context.Context) ([]*Absence, error) {
	var records []*Absence
	err := r.db.NewSelect().
		Model(&records).
		Relation("Coach").
		Where("abs.status = ?", AbsencePending).
		Order("abs.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *absences) Declare(ctx context.Context, record *Absence) (*Absence, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.Type == "" {
		record.Type = AbsenceLeave
	}
	if record.Status == "" {
		record.Status = AbsencePending
	}
	return r.Repository.CreateTx(ctx, r.db, record)
}

func (r *absences) SetStatus(ctx context.Context, id uuid.UUID, status AbsenceStatus) (*Absence, error) {
	record, err := r.Repository.GetByID(ctx, id.String())
	if err != nil {
		return nil, err
	}

	record.Status = status
	return r.Repository.Update(ctx, record, repository.UpdateByID(id.String()))
}

func (r *absences) DeleteByID(ctx context.Context, id uuid.UUID) error {
	record := &Absence{ID: id}
	_, err := r.db.NewDelete().
		Model(record).
		WherePK().
		Exec(ctx)
	return err
}

func (r *absences) DeleteByCoachIDTx(ctx context.Context, tx bun.IDB, coachID uuid.UUID) error {
	_, err := tx.NewDelete().
		Model((*Absence)(nil)).
		Where("coach_id = ?", coachID).
		Exec(ctx)
	return err
}
