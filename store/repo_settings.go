package store

import (
	"context"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"
)

// Settings stores the single-row global configuration. Reads auto create the
// row with defaults so callers never see a missing-settings state.
type Settings interface {
	Get(ctx context.Context) (*GlobalSettings, error)
	Upsert(ctx context.Context, monthlyGoal float64) (*GlobalSettings, error)
}

type settings struct {
	db *bun.DB
}

var _ Settings = (*settings)(nil)

// NewSettingsRepository builds the global settings repository. The settings
// table has a fixed string key so it does not go through the generic uuid
// keyed repository.
func NewSettingsRepository(db *bun.DB) Settings {
	return &settings{db: db}
}

func (r *settings) Get(ctx context.Context) (*GlobalSettings, error) {
	record := &GlobalSettings{}
	err := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", DefaultSettingsID).
		Limit(1).
		Scan(ctx)

	if err == nil {
		return record, nil
	}

	if !repository.IsRecordNotFound(err) {
		return nil, err
	}

	return r.Upsert(ctx, DefaultMonthlyGoal)
}

func (r *settings) Upsert(ctx context.Context, monthlyGoal float64) (*GlobalSettings, error) {
	now := time.Now()
	record := &GlobalSettings{
		ID:          DefaultSettingsID,
		MonthlyGoal: monthlyGoal,
		UpdatedAt:   &now,
	}

	_, err := r.db.NewInsert().
		Model(record).
		On("CONFLICT (id) DO UPDATE").
		Set("monthly_goal = EXCLUDED.monthly_goal").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	return record, nil
}
