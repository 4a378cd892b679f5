package store

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// CoachProfiles stores the business profile attached to COACH principals
type CoachProfiles interface {
	repository.Repository[*CoachProfile]

	GetByUserID(ctx context.Context, userID uuid.UUID) (*CoachProfile, error)
	GetByUserIDTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) (*CoachProfile, error)
	CreateForUserTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) (*CoachProfile, error)
	DeleteByUserIDTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) error
}

type coachProfiles struct {
	repository.Repository[*CoachProfile]
	db *bun.DB
}

var _ CoachProfiles = (*coachProfiles)(nil)

// NewCoachProfilesRepository builds the coach profile repository over bun
func NewCoachProfilesRepository(db *bun.DB) CoachProfiles {
	repo := repository.NewRepository[*CoachProfile](db, repository.ModelHandlers[*CoachProfile]{
		NewRecord: func() *CoachProfile { return &CoachProfile{} },
		GetID: func(p *CoachProfile) uuid.UUID {
			if p == nil {
				return uuid.Nil
			}
			return p.ID
		},
		SetID: func(p *CoachProfile, id uuid.UUID) {
			if p != nil {
				p.ID = id
			}
		},
		GetIdentifier: func() string {
			return "user_id"
		},
	})

	return &coachProfiles{
		Repository: repo,
		db:         db,
	}
}

func (r *coachProfiles) GetByUserID(ctx context.Context, userID uuid.UUID) (*CoachProfile, error) {
	return r.GetByUserIDTx(ctx, r.db, userID)
}

func (r *coachProfiles) GetByUserIDTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) (*CoachProfile, error) {
	record := &CoachProfile{}
	err := tx.NewSelect().
		Model(record).
		Where("?TableAlias.user_id = ?", userID).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{"user_id": userID.String()})
		}
		return nil, err
	}

	return record, nil
}

// CreateForUserTx inserts an empty profile shell for a new coach. Details are
// filled in later through the profile update operation.
func (r *coachProfiles) CreateForUserTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) (*CoachProfile, error) {
	record := &CoachProfile{
		ID:     uuid.New(),
		UserID: userID,
	}
	return r.Repository.CreateTx(ctx, tx, record)
}

func (r *coachProfiles) DeleteByUserIDTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) error {
	_, err := tx.NewDelete().
		Model((*CoachProfile)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx)
	return err
}
