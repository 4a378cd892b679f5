package actions_test

import (
	"context"
	"database/sql"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/coachdesk/coachdesk/auth"
	"github.com/coachdesk/coachdesk/store"
)

func adminCtx() context.Context {
	return auth.WithSession(context.Background(), &auth.SessionObject{
		UserID: uuid.NewString(),
		Role:   auth.RoleAdmin,
	})
}

func coachCtx(id uuid.UUID) context.Context {
	return auth.WithSession(context.Background(), &auth.SessionObject{
		UserID: id.String(),
		Role:   auth.RoleCoach,
	})
}

func anonymousCtx() context.Context {
	return context.Background()
}

func newUUID() uuid.UUID {
	return uuid.New()
}

// stubUsers records registrations; the embedded interface covers the methods
// the tests never reach
type stubUsers struct {
	auth.Users
	registered  []*auth.User
	byRole      map[auth.UserRole][]*auth.User
	registerErr error
}

func (s *stubUsers) RegisterTx(ctx context.Context, tx bun.IDB, user *auth.User) (*auth.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.registered = append(s.registered, user)
	return user, nil
}

func (s *stubUsers) ListByRole(ctx context.Context, role auth.UserRole) ([]*auth.User, error) {
	var out []*auth.User
	for _, u := range s.byRole[role] {
		out = append(out, u)
	}
	return out, nil
}

// stubClients captures roster mutations
type stubClients struct {
	store.Clients
	byID      map[uuid.UUID]*store.Client
	created   []*store.Client
	updated   []*store.Client
	deleted   []uuid.UUID
	createErr error
}

func newStubClients() *stubClients {
	return &stubClients{byID: map[uuid.UUID]*store.Client{}}
}

func (s *stubClients) Create(ctx context.Context, record *store.Client) (*store.Client, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	s.created = append(s.created, record)
	s.byID[record.ID] = record
	return record, nil
}

func (s *stubClients) GetByID(ctx context.Context, id string, criteria ...repository.SelectCriteria) (*store.Client, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.NewRecordNotFound()
	}
	record, ok := s.byID[parsed]
	if !ok {
		return nil, repository.NewRecordNotFound()
	}
	return record, nil
}

func (s *stubClients) Update(ctx context.Context, record *store.Client, criteria ...repository.UpdateCriteria) (*store.Client, error) {
	s.updated = append(s.updated, record)
	s.byID[record.ID] = record
	return record, nil
}

func (s *stubClients) DeleteByID(ctx context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	delete(s.byID, id)
	return nil
}

// stubAbsences captures absence mutations
type stubAbsences struct {
	store.Absences
	byID     map[uuid.UUID]*store.Absence
	declared []*store.Absence
	statuses map[uuid.UUID]store.AbsenceStatus
	deleted  []uuid.UUID
}

func newStubAbsences() *stubAbsences {
	return &stubAbsences{
		byID:     map[uuid.UUID]*store.Absence{},
		statuses: map[uuid.UUID]store.AbsenceStatus{},
	}
}

func (s *stubAbsences) Declare(ctx context.Context, record *store.Absence) (*store.Absence, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	s.declared = append(s.declared, record)
	s.byID[record.ID] = record
	return record, nil
}

func (s *stubAbsences) GetByID(ctx context.Context, id string, criteria ...repository.SelectCriteria) (*store.Absence, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.NewRecordNotFound()
	}
	record, ok := s.byID[parsed]
	if !ok {
		return nil, repository.NewRecordNotFound()
	}
	return record, nil
}

func (s *stubAbsences) SetStatus(ctx context.Context, id uuid.UUID, status store.AbsenceStatus) (*store.Absence, error) {
	record, ok := s.byID[id]
	if !ok {
		return nil, repository.NewRecordNotFound()
	}
	record.Status = status
	s.statuses[id] = status
	return record, nil
}

func (s *stubAbsences) DeleteByID(ctx context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	delete(s.byID, id)
	return nil
}

// stubCoachProfiles keeps profiles keyed by user
type stubCoachProfiles struct {
	store.CoachProfiles
	byUserID map[uuid.UUID]*store.CoachProfile
	created  []uuid.UUID
	updated  []*store.CoachProfile
}

func newStubCoachProfiles() *stubCoachProfiles {
	return &stubCoachProfiles{byUserID: map[uuid.UUID]*store.CoachProfile{}}
}

func (s *stubCoachProfiles) GetByUserID(ctx context.Context, userID uuid.UUID) (*store.CoachProfile, error) {
	record, ok := s.byUserID[userID]
	if !ok {
		return nil, repository.NewRecordNotFound()
	}
	return record, nil
}

func (s *stubCoachProfiles) CreateForUserTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) (*store.CoachProfile, error) {
	record := &store.CoachProfile{ID: uuid.New(), UserID: userID}
	s.byUserID[userID] = record
	s.created = append(s.created, userID)
	return record, nil
}

func (s *stubCoachProfiles) Update(ctx context.Context, record *store.CoachProfile, criteria ...repository.UpdateCriteria) (*store.CoachProfile, error) {
	s.updated = append(s.updated, record)
	s.byUserID[record.UserID] = record
	return record, nil
}

func (s *stubCoachProfiles) DeleteByUserIDTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) error {
	delete(s.byUserID, userID)
	return nil
}

// stubSessions captures calendar mutations
type stubSessions struct {
	store.Sessions
	byID      map[uuid.UUID]*store.TrainingSession
	scheduled []*store.TrainingSession
	statuses  map[uuid.UUID]store.SessionStatus
	deleted   []uuid.UUID
}

func newStubSessions() *stubSessions {
	return &stubSessions{
		byID:     map[uuid.UUID]*store.TrainingSession{},
		statuses: map[uuid.UUID]store.SessionStatus{},
	}
}

func (s *stubSessions) Schedule(ctx context.Context, record *store.TrainingSession) (*store.TrainingSession, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.Status == "" {
		record.Status = store.SessionPlanned
	}
	s.scheduled = append(s.scheduled, record)
	s.byID[record.ID] = record
	return record, nil
}

func (s *stubSessions) GetByID(ctx context.Context, id string, criteria ...repository.SelectCriteria) (*store.TrainingSession, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.NewRecordNotFound()
	}
	record, ok := s.byID[parsed]
	if !ok {
		return nil, repository.NewRecordNotFound()
	}
	return record, nil
}

func (s *stubSessions) GetDetailed(ctx context.Context, id uuid.UUID) (*store.TrainingSession, error) {
	record, ok := s.byID[id]
	if !ok {
		return nil, repository.NewRecordNotFound()
	}
	return record, nil
}

func (s *stubSessions) UpdateTx(ctx context.Context, tx bun.IDB, record *store.TrainingSession, criteria ...repository.UpdateCriteria) (*store.TrainingSession, error) {
	s.byID[record.ID] = record
	return record, nil
}

func (s *stubSessions) SetStatus(ctx context.Context, id uuid.UUID, status store.SessionStatus) (*store.TrainingSession, error) {
	record, ok := s.byID[id]
	if !ok {
		return nil, repository.NewRecordNotFound()
	}
	record.Status = status
	s.statuses[id] = status
	return record, nil
}

func (s *stubSessions) DeleteByID(ctx context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	delete(s.byID, id)
	return nil
}

// stubMeasurements captures reading mutations
type stubMeasurements struct {
	store.Measurements
	added []*store.Measurement
}

func (s *stubMeasurements) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*store.Measurement, error) {
	var out []*store.Measurement
	for _, m := range s.added {
		if m.ClientID == clientID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubMeasurements) Add(ctx context.Context, record *store.Measurement) (*store.Measurement, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	s.added = append(s.added, record)
	return record, nil
}

// stubRequests keeps change requests in memory
type stubRequests struct {
	store.ChangeRequests
	byID    map[uuid.UUID]*store.SessionChangeRequest
	created []*store.SessionChangeRequest
	updated []*store.SessionChangeRequest
}

func newStubRequests() *stubRequests {
	return &stubRequests{byID: map[uuid.UUID]*store.SessionChangeRequest{}}
}

func (s *stubRequests) CreateTx(ctx context.Context, tx bun.IDB, record *store.SessionChangeRequest, criteria ...repository.InsertCriteria) (*store.SessionChangeRequest, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	s.created = append(s.created, record)
	s.byID[record.ID] = record
	return record, nil
}

func (s *stubRequests) UpdateTx(ctx context.Context, tx bun.IDB, record *store.SessionChangeRequest, criteria ...repository.UpdateCriteria) (*store.SessionChangeRequest, error) {
	s.updated = append(s.updated, record)
	s.byID[record.ID] = record
	return record, nil
}

func (s *stubRequests) GetDetailed(ctx context.Context, id uuid.UUID) (*store.SessionChangeRequest, error) {
	record, ok := s.byID[id]
	if !ok {
		return nil, repository.NewRecordNotFound()
	}
	return record, nil
}

func (s *stubRequests) PendingExistsForSession(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	for _, r := range s.byID {
		if r.SessionID == sessionID && r.Status == store.RequestPending {
			return true, nil
		}
	}
	return false, nil
}

// stubNotifications records deliveries and read flips
type stubNotifications struct {
	store.Notifications
	delivered   []*store.Notification
	markedRead  []uuid.UUID
	markedAllBy []uuid.UUID
}

func (s *stubNotifications) NotifyTx(ctx context.Context, tx bun.IDB, record *store.Notification) (*store.Notification, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	s.delivered = append(s.delivered, record)
	return record, nil
}

func (s *stubNotifications) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	s.markedRead = append(s.markedRead, id)
	return nil
}

func (s *stubNotifications) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	s.markedAllBy = append(s.markedAllBy, userID)
	return nil
}

// stubServices captures catalog mutations
type stubServices struct {
	store.Services
	created []*store.Service
	deleted []uuid.UUID
}

func (s *stubServices) Create(ctx context.Context, record *store.Service) (*store.Service, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	s.created = append(s.created, record)
	return record, nil
}

func (s *stubServices) DeleteByID(ctx context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	return nil
}

// stubSettings records the last upserted goal
type stubSettings struct {
	record   *store.GlobalSettings
	upserted []float64
}

func (s *stubSettings) Get(ctx context.Context) (*store.GlobalSettings, error) {
	if s.record == nil {
		s.record = &store.GlobalSettings{ID: store.DefaultSettingsID, MonthlyGoal: store.DefaultMonthlyGoal}
	}
	return s.record, nil
}

func (s *stubSettings) Upsert(ctx context.Context, monthlyGoal float64) (*store.GlobalSettings, error) {
	s.upserted = append(s.upserted, monthlyGoal)
	s.record = &store.GlobalSettings{ID: store.DefaultSettingsID, MonthlyGoal: monthlyGoal}
	return s.record, nil
}

// stubStore wires the stubs behind the narrow handler interfaces
type stubStore struct {
	users        *stubUsers
	clients      *stubClients
	measurements *stubMeasurements
	profiles     *stubCoachProfiles
	absences     *stubAbsences
	services     *stubServices
	sessions     *stubSessions
	requests     *stubRequests
	inbox        *stubNotifications
	settings     *stubSettings
}

func newStubStore() *stubStore {
	return &stubStore{
		users:        &stubUsers{byRole: map[auth.UserRole][]*auth.User{}},
		clients:      newStubClients(),
		measurements: &stubMeasurements{},
		profiles:     newStubCoachProfiles(),
		absences:     newStubAbsences(),
		services:     &stubServices{},
		sessions:     newStubSessions(),
		requests:     newStubRequests(),
		inbox:        &stubNotifications{},
		settings:     &stubSettings{},
	}
}

func (s *stubStore) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	return f(ctx, bun.Tx{})
}

func (s *stubStore) Users() auth.Users                    { return s.users }
func (s *stubStore) Clients() store.Clients               { return s.clients }
func (s *stubStore) Measurements() store.Measurements     { return s.measurements }
func (s *stubStore) CoachProfiles() store.CoachProfiles   { return s.profiles }
func (s *stubStore) Absences() store.Absences             { return s.absences }
func (s *stubStore) Services() store.Services             { return s.services }
func (s *stubStore) Sessions() store.Sessions             { return s.sessions }
func (s *stubStore) ChangeRequests() store.ChangeRequests { return s.requests }
func (s *stubStore) Notifications() store.Notifications   { return s.inbox }
func (s *stubStore) Settings() store.Settings             { return s.settings }
