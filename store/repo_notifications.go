package store

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Notifications stores per-user in-app notifications
type Notifications interface {
	repository.Repository[*Notification]

	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	NotifyTx(ctx context.Context, tx bun.IDB, record *Notification) (*Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

type notifications struct {
	repository.Repository[*Notification]
	db *bun.DB
}

var _ Notifications = (*notifications)(nil)

// NewNotificationsRepository builds the notification repository over bun
func NewNotificationsRepository(db *bun.DB) Notifications {
	repo := repository.NewRepository[*Notification](db, repository.ModelHandlers[*Notification]{
		NewRecord: func() *Notification { return &Notification{} },
		GetID: func(n *Notification) uuid.UUID {
			if n == nil {
				return uuid.Nil
			}
			return n.ID
		},
		SetID: func(n *Notification, id uuid.UUID) {
			if n != nil {
				n.ID = id
			}
		},
		GetIdentifier: func() string {
			return "id"
		},
	})

	return &notifications{
		Repository: repo,
		db:         db,
	}
}

func (r *notifications) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*Notification, error) {
	var records []*Notification
	q := r.db.NewSelect().
		Model(&records).
		Where("ntf.user_id = ?", userID).
		Order("ntf.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *notifications) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	return r.db.NewSelect().
		Model((*Notification)(nil)).
		Where("ntf.user_id = ?", userID).
		Where("ntf.read = ?", false).
		Count(ctx)
}

func (r *notifications) NotifyTx(ctx context.Context, tx bun.IDB, record *Notification) (*Notification, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return r.Repository.CreateTx(ctx, tx, record)
}

// MarkRead flips one notification, scoped to its owner so a forged id cannot
// touch someone else's inbox
func (r *notifications) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*Notification)(nil)).
		Set("read = ?", true).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Exec(ctx)
	return err
}

func (r *notifications) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*Notification)(nil)).
		Set("read = ?", true).
		Where("user_id = ?", userID).
		Where("read = ?", false).
		Exec(ctx)
	return err
}
