package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/coachdesk/coachdesk/auth"
)

// Client is a coached customer record
type Client struct {
	bun.BaseModel    `bun:"table:clients,alias:clt"`
	ID               uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name             string     `bun:"name,notnull" json:"name,omitempty"`
	Email            string     `bun:"email" json:"email,omitempty"`
	Phone            string     `bun:"phone" json:"phone,omitempty"`
	Address          string     `bun:"address" json:"address,omitempty"`
	BirthDate        *time.Time `bun:"birth_date,nullzero" json:"birth_date,omitempty"`
	Height           *float64   `bun:"height" json:"height,omitempty"`
	Pathology        string     `bun:"pathology" json:"pathology,omitempty"`
	Goals            string     `bun:"goals" json:"goals,omitempty"`
	EmergencyContact string     `bun:"emergency_contact" json:"emergency_contact,omitempty"`
	Notes            string     `bun:"notes" json:"notes,omitempty"`
	CreatedAt        *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt        *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
	DeletedAt        *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"deleted_at,omitempty"`
}

// Measurement is a body-composition reading taken for a client. All values
// are optional; a reading may carry any subset.
type Measurement struct {
	bun.BaseModel `bun:"table:measurements,alias:msr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	ClientID      uuid.UUID  `bun:"client_id,notnull,type:uuid" json:"client_id,omitempty"`
	Client        *Client    `bun:"rel:belongs-to,join:client_id=id" json:"client,omitempty"`
	Weight        *float64   `bun:"weight" json:"weight,omitempty"`
	FatMass       *float64   `bun:"fat_mass" json:"fat_mass,omitempty"`
	MuscleMass    *float64   `bun:"muscle_mass" json:"muscle_mass,omitempty"`
	Date          time.Time  `bun:"date,notnull" json:"date,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// CoachProfile extends a COACH principal with business details
type CoachProfile struct {
	bun.BaseModel `bun:"table:coach_profiles,alias:cpr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	UserID        uuid.UUID  `bun:"user_id,notnull,unique,type:uuid" json:"user_id,omitempty"`
	User          *auth.User `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
	HourlyRate    *float64   `bun:"hourly_rate" json:"hourly_rate,omitempty"`
	Diplomas      string     `bun:"diplomas" json:"diplomas,omitempty"`
	DiplomasFile  string     `bun:"diplomas_file" json:"diplomas_file,omitempty"`
	RCPInsurance  string     `bun:"rcp_insurance" json:"rcp_insurance,omitempty"`
	RCPFile       string     `bun:"rcp_file" json:"rcp_file,omitempty"`
	Contract      string     `bun:"contract" json:"contract,omitempty"`
	ContractFile  string     `bun:"contract_file" json:"contract_file,omitempty"`
	Skills        string     `bun:"skills" json:"skills,omitempty"`
	Specialties   string     `bun:"specialties" json:"specialties,omitempty"`
	Bio           string     `bun:"bio" json:"bio,omitempty"`
	Phone         string     `bun:"phone" json:"phone,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// AbsenceType classifies a coach absence
type AbsenceType = string

const (
	AbsenceLeave    AbsenceType = "CONGE"
	AbsenceSickness AbsenceType = "MALADIE"
	AbsenceOther    AbsenceType = "AUTRE"
)

// AbsenceStatus is the approval state of a declared absence
type AbsenceStatus = string

const (
	AbsencePending  AbsenceStatus = "PENDING"
	AbsenceApproved AbsenceStatus = "APPROVED"
	AbsenceRefused  AbsenceStatus = "REFUSED"
)

// Absence is a coach unavailability window
type Absence struct {
	bun.BaseModel `bun:"table:absences,alias:abs"`
	ID            uuid.UUID     `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	CoachID       uuid.UUID     `bun:"coach_id,notnull,type:uuid" json:"coach_id,omitempty"`
	Coach         *auth.User    `bun:"rel:belongs-to,join:coach_id=id" json:"coach,omitempty"`
	StartDate     time.Time     `bun:"start_date,notnull" json:"start_date,omitempty"`
	EndDate       time.Time     `bun:"end_date,notnull" json:"end_date,omitempty"`
	Reason        string        `bun:"reason" json:"reason,omitempty"`
	Type          AbsenceType   `bun:"type,notnull,default:'CONGE'" json:"type,omitempty"`
	Status        AbsenceStatus `bun:"status,notnull,default:'PENDING'" json:"status,omitempty"`
	CreatedAt     *time.Time    `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time    `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Service is a billable offering (personal training, group class, assessment)
type Service struct {
	bun.BaseModel   `bun:"table:services,alias:svc"`
	ID              uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name            string     `bun:"name,notnull" json:"name,omitempty"`
	Description     string     `bun:"description" json:"description,omitempty"`
	Price           float64    `bun:"price,notnull" json:"price"`
	DurationMinutes int        `bun:"duration_minutes,notnull" json:"duration_minutes,omitempty"`
	CreatedAt       *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt       *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// SessionStatus is the lifecycle state of a planned coaching session
type SessionStatus = string

const (
	SessionPlanned   SessionStatus = "PLANNED"
	SessionCompleted SessionStatus = "COMPLETED"
	SessionCancelled SessionStatus = "CANCELLED"
)

// TrainingSession is a scheduled appointment between a coach and a client
type TrainingSession struct {
	bun.BaseModel `bun:"table:training_sessions,alias:tse"`
	ID            uuid.UUID     `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Date          time.Time     `bun:"date,notnull" json:"date,omitempty"`
	ClientID      uuid.UUID     `bun:"client_id,notnull,type:uuid" json:"client_id,omitempty"`
	Client        *Client       `bun:"rel:belongs-to,join:client_id=id" json:"client,omitempty"`
	CoachID       uuid.UUID     `bun:"coach_id,notnull,type:uuid" json:"coach_id,omitempty"`
	Coach         *auth.User    `bun:"rel:belongs-to,join:coach_id=id" json:"coach,omitempty"`
	ServiceID     uuid.UUID     `bun:"service_id,notnull,type:uuid" json:"service_id,omitempty"`
	Service       *Service      `bun:"rel:belongs-to,join:service_id=id" json:"service,omitempty"`
	Status        SessionStatus `bun:"status,notnull,default:'PLANNED'" json:"status,omitempty"`
	Notes         string        `bun:"notes" json:"notes,omitempty"`
	CreatedAt     *time.Time    `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time    `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// ChangeRequestType says what the coach wants done with the session
type ChangeRequestType = string

const (
	ChangeRequestCancel     ChangeRequestType = "CANCEL"
	ChangeRequestReschedule ChangeRequestType = "RESCHEDULE"
)

// ChangeRequestStatus is the review state of a change request
type ChangeRequestStatus = string

const (
	RequestPending  ChangeRequestStatus = "PENDING"
	RequestApproved ChangeRequestStatus = "APPROVED"
	RequestRejected ChangeRequestStatus = "REJECTED"
)

// SessionChangeRequest is a coach's ask to cancel or reschedule a session,
// pending an administrator's decision
type SessionChangeRequest struct {
	bun.BaseModel `bun:"table:session_change_requests,alias:scr"`
	ID            uuid.UUID           `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	SessionID     uuid.UUID           `bun:"session_id,notnull,type:uuid" json:"session_id,omitempty"`
	Session       *TrainingSession    `bun:"rel:belongs-to,join:session_id=id" json:"session,omitempty"`
	CoachID       uuid.UUID           `bun:"coach_id,notnull,type:uuid" json:"coach_id,omitempty"`
	Coach         *auth.User          `bun:"rel:belongs-to,join:coach_id=id" json:"coach,omitempty"`
	Type          ChangeRequestType   `bun:"type,notnull" json:"type,omitempty"`
	Reason        string              `bun:"reason,notnull" json:"reason,omitempty"`
	NewDate       *time.Time          `bun:"new_date,nullzero" json:"new_date,omitempty"`
	Status        ChangeRequestStatus `bun:"status,notnull,default:'PENDING'" json:"status,omitempty"`
	AdminResponse string              `bun:"admin_response" json:"admin_response,omitempty"`
	RespondedAt   *time.Time          `bun:"responded_at,nullzero" json:"responded_at,omitempty"`
	CreatedAt     *time.Time          `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// NotificationKind tags what a notification is about
type NotificationKind = string

const (
	NotificationRequestNew      NotificationKind = "REQUEST_NEW"
	NotificationRequestApproved NotificationKind = "REQUEST_APPROVED"
	NotificationRequestRejected NotificationKind = "REQUEST_REJECTED"
)

// Notification is an in-app message addressed to one user, with read tracking
type Notification struct {
	bun.BaseModel `bun:"table:notifications,alias:ntf"`
	ID            uuid.UUID        `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	UserID        uuid.UUID        `bun:"user_id,notnull,type:uuid" json:"user_id,omitempty"`
	Type          NotificationKind `bun:"type,notnull" json:"type,omitempty"`
	Title         string           `bun:"title,notnull" json:"title,omitempty"`
	Message       string           `bun:"message,notnull" json:"message,omitempty"`
	Link          string           `bun:"link" json:"link,omitempty"`
	Read          bool             `bun:"read,notnull,default:false" json:"read"`
	CreatedAt     *time.Time       `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// DefaultSettingsID is the singleton row key for global settings
const DefaultSettingsID = "default"

// DefaultMonthlyGoal seeds the revenue objective when no row exists yet
const DefaultMonthlyGoal = 2000.0

// GlobalSettings is a single-row table holding business-wide knobs
type GlobalSettings struct {
	bun.BaseModel `bun:"table:global_settings,alias:gst"`
	ID            string     `bun:"id,pk" json:"id,omitempty"`
	MonthlyGoal   float64    `bun:"monthly_goal,notnull" json:"monthly_goal"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}
