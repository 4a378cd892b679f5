package store

import (
	"context"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Measurements stores client body-composition readings
type Measurements interface {
	repository.Repository[*Measurement]

	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*Measurement, error)
	Add(ctx context.Context, record *Measurement) (*Measurement, error)
}

type measurements struct {
	repository.Repository[*Measurement]
	db *bun.DB
}

var _ Measurements = (*measurements)(nil)

// NewMeasurementsRepository builds the measurement repository over bun
func NewMeasurementsRepository(db *bun.DB) Measurements {
	repo := repository.NewRepository[*Measurement](db, repository.ModelHandlers[*Measurement]{
		NewRecord: func() *Measurement { return &Measurement{} },
		GetID: func(m *Measurement) uuid.UUID {
			if m == nil {
				return uuid.Nil
			}
			return m.ID
		},
		SetID: func(m *Measurement, id uuid.UUID) {
			if m != nil {
				m.ID = id
			}
		},
		GetIdentifier: func() string {
			return "id"
		},
	})

	return &measurements{
		Repository: repo,
		db:         db,
	}
}

func (r *measurements) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*Measurement, error) {
	var records []*Measurement
	err := r.db.NewSelect().
		Model(&records).
		Where("msr.client_id = ?", clientID).
		Order("msr.date DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *measurements) Add(ctx context.Context, record *Measurement) (*Measurement, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.Date.IsZero() {
		record.Date = time.Now()
	}
	return r.Repository.CreateTx(ctx, r.db, record)
}
