package store

import (
	"context"
	"strings"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Clients is the client roster repository
type Clients interface {
	repository.Repository[*Client]

	List(ctx context.Context) ([]*Client, error)
	Create(ctx context.Context, record *Client) (*Client, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type clients struct {
	repository.Repository[*Client]
	db *bun.DB
}

var _ Clients = (*clients)(nil)

// NewClientsRepository builds the client repository over bun
func NewClientsRepository(db *bun.DB) Clients {
	repo := repository.NewRepository[*Client](db, repository.ModelHandlers[*Client]{
		NewRecord: func() *Client { return &Client{} },
		GetID: func(c *Client) uuid.UUID {
			if c == nil {
				return uuid.Nil
			}
			return c.ID
		},
		SetID: func(c *Client, id uuid.UUID) {
			if c != nil {
				c.ID = id
			}
		},
		GetIdentifier: func() string {
			return "name"
		},
	})

	return &clients{
		Repository: repo,
		db:         db,
	}
}

func (r *clients) List(ctx context.Context) ([]*Client, error) {
	var records []*Client
	err := r.db.NewSelect().
		Model(&records).
		Order("clt.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *clients) Create(ctx context.Context, record *Client) (*Client, error) {
	prepareClientDefaults(record)
	return r.Repository.CreateTx(ctx, r.db, record)
}

func (r *clients) DeleteByID(ctx context.Context, id uuid.UUID) error {
	record := &Client{ID: id}
	_, err := r.db.NewDelete().
		Model(record).
		WherePK().
		Exec(ctx)
	return err
}

func prepareClientDefaults(record *Client) {
	if record == nil {
		return
	}

	record.Name = strings.TrimSpace(record.Name)
	record.Email = strings.TrimSpace(strings.ToLower(record.Email))

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
}
