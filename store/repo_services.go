package store

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Services is the billable offering catalog
type Services interface {
	repository.Repository[*Service]

	List(ctx context.Context) ([]*Service, error)
	Create(ctx context.Context, record *Service) (*Service, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type services struct {
	repository.Repository[*Service]
	db *bun.DB
}

var _ Services = (*services)(nil)

// NewServicesRepository builds the service catalog repository over bun
func NewServicesRepository(db *bun.DB) Services {
	repo := repository.NewRepository[*Service](db, repository.ModelHandlers[*Service]{
		NewRecord: func() *Service { return &Service{} },
		GetID: func(s *Service) uuid.UUID {
			if s == nil {
				return uuid.Nil
			}
			return s.ID
		},
		SetID: func(s *Service, id uuid.UUID) {
			if s != nil {
				s.ID = id
			}
		},
		GetIdentifier: func() string {
			return "name"
		},
	})

	return &services{
		Repository: repo,
		db:         db,
	}
}

func (r *services) List(ctx context.Context) ([]*Service, error) {
	var records []*Service
	err := r.db.NewSelect().
		Model(&records).
		Order("svc.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *services) Create(ctx context.Context, record *Service) (*Service, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return r.Repository.CreateTx(ctx, r.db, record)
}

func (r *services) DeleteByID(ctx context.Context, id uuid.UUID) error {
	record := &Service{ID: id}
	_, err := r.db.NewDelete().
		Model(record).
		WherePK().
		Exec(ctx)
	return err
}
