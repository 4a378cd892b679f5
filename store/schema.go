package store

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/coachdesk/coachdesk/auth"
)

// Models lists every persisted model in foreign key order
func Models() []any {
	return []any{
		(*auth.User)(nil),
		(*Client)(nil),
		(*Measurement)(nil),
		(*CoachProfile)(nil),
		(*Absence)(nil),
		(*Service)(nil),
		(*TrainingSession)(nil),
		(*SessionChangeRequest)(nil),
		(*Notification)(nil),
		(*GlobalSettings)(nil),
	}
}

// CreateSchema creates every table if it does not exist yet. The sqlite
// deployment target has no migration history to manage; additive changes go
// through new columns with defaults.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	for _, model := range Models() {
		_, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return err
		}
	}

	return nil
}
