// Package store holds the business data layer: clients and their
// measurements, coach profiles, absences, services, training sessions,
// session change requests, notifications and global settings, persisted
// through bun.
package store

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"

	"github.com/coachdesk/coachdesk/auth"
)

// Manager exposes all repositories
type Manager interface {
	repository.Validator
	repository.TransactionManager
	Users() auth.Users
	Clients() Clients
	Measurements() Measurements
	CoachProfiles() CoachProfiles
	Absences() Absences
	Services() Services
	Sessions() Sessions
	ChangeRequests() ChangeRequests
	Notifications() Notifications
	Settings() Settings
}

type mngr struct {
	db            *bun.DB
	users         auth.Users
	clients       Clients
	measurements  Measurements
	coachProfiles CoachProfiles
	absences      Absences
	services      Services
	sessions      Sessions
	requests      ChangeRequests
	notifications Notifications
	settings      Settings
}

// NewManager wires every repository over the given database handle
func NewManager(db *bun.DB) Manager {
	return &mngr{
		db:            db,
		users:         auth.NewUsersRepository(db),
		clients:       NewClientsRepository(db),
		measurements:  NewMeasurementsRepository(db),
		coachProfiles: NewCoachProfilesRepository(db),
		absences:      NewAbsencesRepository(db),
		services:      NewServicesRepository(db),
		sessions:      NewSessionsRepository(db),
		requests:      NewChangeRequestsRepository(db),
		notifications: NewNotificationsRepository(db),
		settings:      NewSettingsRepository(db),
	}
}

func (m mngr) Validate() error {
	if m.users == nil {
		return errors.New("repository users should be initialized")
	}

	if m.clients == nil {
		return errors.New("repository clients should be initialized")
	}

	if m.coachProfiles == nil {
		return errors.New("repository coachProfiles should be initialized")
	}

	if m.absences == nil {
		return errors.New("repository absences should be initialized")
	}

	if m.services == nil {
		return errors.New("repository services should be initialized")
	}

	if m.sessions == nil {
		return errors.New("repository sessions should be initialized")
	}

	if m.measurements == nil {
		return errors.New("repository measurements should be initialized")
	}

	if m.requests == nil {
		return errors.New("repository requests should be initialized")
	}

	if m.notifications == nil {
		return errors.New("repository notifications should be initialized")
	}

	if m.settings == nil {
		return errors.New("repository settings should be initialized")
	}

	return nil
}

func (m mngr) MustValidate() {
	if err := m.Validate(); err != nil {
		log.Panic(err)
	}
}

func (m mngr) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return m.db.RunInTx(ctx, opts, f)
	}
}

func (m mngr) Users() auth.Users {
	return m.users
}

func (m mngr) Clients() Clients {
	return m.clients
}

func (m mngr) CoachProfiles() CoachProfiles {
	return m.coachProfiles
}

func (m mngr) Absences() Absences {
	return m.absences
}

func (m mngr) Services() Services {
	return m.services
}

func (m mngr) Sessions() Sessions {
	return m.sessions
}

func (m mngr) Measurements() Measurements {
	return m.measurements
}

func (m mngr) ChangeRequests() ChangeRequests {
	return m.requests
}

func (m mngr) Notifications() Notifications {
	return m.notifications
}

func (m mngr) Settings() Settings {
	return m.settings
}
