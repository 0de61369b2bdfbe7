// Package sharedtest provides testify mocks for the collaborators of the
// application services.
package sharedtest

import (
	"context"

	appshared "github.com/rescue-ops/backend/internal/application/shared"
	"github.com/rescue-ops/backend/internal/domain/audit"
	"github.com/rescue-ops/backend/internal/domain/identity"
	"github.com/rescue-ops/backend/internal/domain/incident"
	"github.com/rescue-ops/backend/internal/domain/messaging"
	"github.com/rescue-ops/backend/internal/domain/reference"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/rescue-ops/backend/internal/domain/teams"
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of shared.Store
type MockStore[T any] struct {
	mock.Mock
}

func (m *MockStore[T]) Create(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockStore[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockStore[T]) FindAll(ctx context.Context, filter shared.Filter) ([]T, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockStore[T]) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore[T]) Update(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockStore[T]) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore[T]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct{ MockStore[identity.User] }

// MockUserTypeRepository is a mock implementation of identity.UserTypeRepository
type MockUserTypeRepository struct{ MockStore[identity.UserType] }

func (m *MockUserTypeRepository) FindByName(ctx context.Context, name string) (*identity.UserType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.UserType), args.Error(1)
}

// MockTeamRepository is a mock implementation of teams.TeamRepository
type MockTeamRepository struct{ MockStore[teams.Team] }

func (m *MockTeamRepository) FindByCompany(ctx context.Context, companyID int64) ([]teams.Team, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]teams.Team), args.Error(1)
}

// MockTeamTypeRepository is a mock implementation of teams.TeamTypeRepository
type MockTeamTypeRepository struct{ MockStore[teams.TeamType] }

func (m *MockTeamTypeRepository) FindByName(ctx context.Context, name string) (*teams.TeamType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teams.TeamType), args.Error(1)
}

// MockCompanyRepository is a mock implementation of teams.CompanyRepository
type MockCompanyRepository struct{ MockStore[teams.Company] }

// MockIncidentRepository is a mock implementation of incident.IncidentRepository
type MockIncidentRepository struct{ MockStore[incident.Incident] }

func (m *MockIncidentRepository) CreateBatch(ctx context.Context, incidents []*incident.Incident) error {
	args := m.Called(ctx, incidents)
	return args.Error(0)
}

// MockMessageRepository is a mock implementation of messaging.MessageRepository
type MockMessageRepository struct{ MockStore[messaging.Message] }

// MockNotificationRepository is a mock implementation of messaging.NotificationRepository
type MockNotificationRepository struct{ MockStore[messaging.Notification] }

func (m *MockNotificationRepository) FindByRecipient(ctx context.Context, userID int64, unreadOnly bool) ([]messaging.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly)
	return args.Get(0).([]messaging.Notification), args.Error(1)
}

// MockAuditRepository is a mock implementation of audit.Repository
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Append(ctx context.Context, record *audit.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAuditRepository) FindBySubject(ctx context.Context, subject audit.Subject) ([]audit.Record, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]audit.Record), args.Error(1)
}

func (m *MockAuditRepository) FindAll(ctx context.Context, filter shared.Filter) ([]audit.Record, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]audit.Record), args.Error(1)
}

func (m *MockAuditRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockReferenceValidator is a mock implementation of appshared.ReferenceValidator
type MockReferenceValidator struct {
	mock.Mock
}

func (m *MockReferenceValidator) Validate(ctx context.Context, keys []reference.Key) reference.Outcome {
	args := m.Called(ctx, keys)
	return args.Get(0).(reference.Outcome)
}

func (m *MockReferenceValidator) ValidateSupplied(ctx context.Context, keys []reference.Key) reference.Outcome {
	args := m.Called(ctx, keys)
	return args.Get(0).(reference.Outcome)
}

// Repositories hands the same mocks to every transaction.
type Repositories struct {
	UserRepo     *MockUserRepository
	TeamRepo     *MockTeamRepository
	IncidentRepo *MockIncidentRepository
	MessageRepo  *MockMessageRepository
	AuditRepo    *MockAuditRepository
}

func (r *Repositories) Users() identity.UserRepository { return r.UserRepo }
func (r *Repositories) Teams() teams.TeamRepository { return r.TeamRepo }
func (r *Repositories) Incidents() incident.IncidentRepository { return r.IncidentRepo }
func (r *Repositories) Messages() messaging.MessageRepository { return r.MessageRepo }
func (r *Repositories) Audit() audit.Repository { return r.AuditRepo }

// TransactionScope runs fn directly against Repos and counts the calls.
// A non-nil Err is returned instead of running fn.
type TransactionScope struct {
	Repos *Repositories
	Err   error
	Calls int
}

// NewTransactionScope creates a scope over fresh mocks
func NewTransactionScope() *TransactionScope {
	return &TransactionScope{Repos: &Repositories{
		UserRepo:     new(MockUserRepository),
		TeamRepo:     new(MockTeamRepository),
		IncidentRepo: new(MockIncidentRepository),
		MessageRepo:  new(MockMessageRepository),
		AuditRepo:    new(MockAuditRepository),
	}}
}

func (s *TransactionScope) Execute(ctx context.Context, fn func(repos appshared.TransactionalRepositories) error) error {
	s.Calls++
	if s.Err != nil {
		return s.Err
	}
	return fn(s.Repos)
}

// Observer records rejected fields and appended audit kinds.
type Observer struct {
	Rejections []string
	Records    []string
}

func (o *Observer) IncValidationReject(aggregate, field string) {
	o.Rejections = append(o.Rejections, aggregate+"."+field)
}

func (o *Observer) IncAuditRecord(subjectKind string) {
	o.Records = append(o.Records, subjectKind)
}

var (
	_ identity.UserRepository             = (*MockUserRepository)(nil)
	_ identity.UserTypeRepository         = (*MockUserTypeRepository)(nil)
	_ teams.TeamRepository                = (*MockTeamRepository)(nil)
	_ teams.TeamTypeRepository            = (*MockTeamTypeRepository)(nil)
	_ teams.CompanyRepository             = (*MockCompanyRepository)(nil)
	_ incident.IncidentRepository         = (*MockIncidentRepository)(nil)
	_ messaging.MessageRepository         = (*MockMessageRepository)(nil)
	_ messaging.NotificationRepository    = (*MockNotificationRepository)(nil)
	_ audit.Repository                    = (*MockAuditRepository)(nil)
	_ appshared.ReferenceValidator        = (*MockReferenceValidator)(nil)
	_ appshared.TransactionScope          = (*TransactionScope)(nil)
	_ appshared.TransactionalRepositories = (*Repositories)(nil)
)
