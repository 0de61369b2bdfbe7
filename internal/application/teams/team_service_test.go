package teams

import (
	"context"
	"errors"
	"testing"
	"time"

	appaudit "github.com/rescue-ops/backend/internal/application/audit"
	"github.com/rescue-ops/backend/internal/application/shared/sharedtest"
	"github.com/rescue-ops/backend/internal/domain/audit"
	"github.com/rescue-ops/backend/internal/domain/reference"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/rescue-ops/backend/internal/domain/teams"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

type teamFixture struct {
	repo      *sharedtest.MockTeamRepository
	validator *sharedtest.MockReferenceValidator
	observer  *sharedtest.Observer
	tx        *sharedtest.TransactionScope
	svc       *TeamService
}

func newTeamFixture() *teamFixture {
	f := &teamFixture{
		repo:      new(sharedtest.MockTeamRepository),
		validator: new(sharedtest.MockReferenceValidator),
		observer:  &sharedtest.Observer{},
		tx:        sharedtest.NewTransactionScope(),
	}
	recorder := appaudit.NewRecorder(new(sharedtest.MockAuditRepository),
		appaudit.WithClock(func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }),
		appaudit.WithObserver(f.observer))
	f.svc = NewTeamService(f.repo, f.validator, f.observer, f.tx, recorder, zap.NewNop())
	return f
}

func existingTeam(id, statusID int64) *teams.Team {
	team := teams.NewTeam("Alpha", "mountain rescue", statusID, 2, 3)
	team.ID = id
	return team
}

func TestTeamService_Create(t *testing.T) {
	ctx := context.Background()
	valid := CreateTeamInput{Name: "Alpha", StatusID: 1, TeamTypeID: 2, CompanyID: 3}

	t.Run("creates when references resolve", func(t *testing.T) {
		f := newTeamFixture()
		f.validator.On("Validate", ctx, mock.Anything).Return(reference.Accept())
		f.repo.On("Create", ctx, mock.AnythingOfType("*teams.Team")).
			Run(func(args mock.Arguments) { args.Get(1).(*teams.Team).ID = 10 }).
			Return(nil)

		dto, err := f.svc.Create(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, int64(10), dto.ID)
		assert.Equal(t, int64(3), dto.CompanyID)
		f.repo.AssertExpectations(t)
	})

	t.Run("field validation rejects before any lookup", func(t *testing.T) {
		f := newTeamFixture()
		input := valid
		input.Name = ""

		_, err := f.svc.Create(ctx, input)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeValidationRejected, domainErr.Code)
		assert.Equal(t, "name", domainErr.Field)
		f.validator.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("dangling company never reaches the store", func(t *testing.T) {
		f := newTeamFixture()
		key := reference.Key{KeySpec: teams.TeamKeySpecs[2], ID: int64Ptr(3)}
		f.validator.On("Validate", ctx, mock.Anything).Return(reference.Reject(key, "company 3 does not exist"))

		_, err := f.svc.Create(ctx, valid)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeValidationRejected, domainErr.Code)
		assert.Equal(t, "company_id", domainErr.Field)
		assert.Equal(t, []string{"team.company_id"}, f.observer.Rejections)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate name becomes a validation rejection", func(t *testing.T) {
		f := newTeamFixture()
		f.validator.On("Validate", ctx, mock.Anything).Return(reference.Accept())
		f.repo.On("Create", ctx, mock.Anything).Return(shared.NewUniqueViolation("name"))

		_, err := f.svc.Create(ctx, valid)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeValidationRejected, domainErr.Code)
		assert.Equal(t, "name", domainErr.Field)
	})

	t.Run("unexpected store error is internal", func(t *testing.T) {
		f := newTeamFixture()
		f.validator.On("Validate", ctx, mock.Anything).Return(reference.Accept())
		f.repo.On("Create", ctx, mock.Anything).Return(errors.New("connection reset"))

		_, err := f.svc.Create(ctx, valid)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeInternal, domainErr.Code)
	})
}

func TestTeamService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("status change writes exactly one audit record", func(t *testing.T) {
		f := newTeamFixture()
		f.repo.On("FindByID", ctx, int64(7)).Return(existingTeam(7, 1), nil)
		f.validator.On("ValidateSupplied", mock.Anything, mock.Anything).Return(reference.Accept())
		f.tx.Repos.TeamRepo.On("Update", mock.Anything, mock.MatchedBy(func(team *teams.Team) bool {
			return team.ID == 7 && team.StatusID == 3
		})).Return(nil)
		f.tx.Repos.AuditRepo.On("Append", mock.Anything, mock.MatchedBy(func(r *audit.Record) bool {
			return r.Subject == audit.TeamSubject(7) &&
				r.PreviousStatusID == 1 && r.NewStatusID == 3 &&
				r.Detail == "status changed from 1 to 3"
		})).Return(nil).Once()

		dto, err := f.svc.Update(ctx, 7, UpdateTeamInput{StatusID: int64Ptr(3)})
		require.NoError(t, err)
		assert.Equal(t, int64(3), dto.StatusID)
		assert.Equal(t, 1, f.tx.Calls)
		f.tx.Repos.AuditRepo.AssertNumberOfCalls(t, "Append", 1)
		f.tx.Repos.TeamRepo.AssertExpectations(t)
		f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		assert.Equal(t, []string{"team"}, f.observer.Records)
	})

	t.Run("caller reason is used as detail", func(t *testing.T) {
		f := newTeamFixture()
		f.repo.On("FindByID", ctx, int64(7)).Return(existingTeam(7, 1), nil)
		f.validator.On("ValidateSupplied", mock.Anything, mock.Anything).Return(reference.Accept())
		f.tx.Repos.TeamRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		f.tx.Repos.AuditRepo.On("Append", mock.Anything, mock.MatchedBy(func(r *audit.Record) bool {
			return r.Detail == "deployed to sector 4"
		})).Return(nil)

		_, err := f.svc.Update(ctx, 7, UpdateTeamInput{StatusID: int64Ptr(2), StatusReason: "deployed to sector 4"})
		require.NoError(t, err)
		f.tx.Repos.AuditRepo.AssertExpectations(t)
	})

	t.Run("non-status change writes no audit record", func(t *testing.T) {
		f := newTeamFixture()
		f.repo.On("FindByID", ctx, int64(7)).Return(existingTeam(7, 1), nil)
		f.validator.On("ValidateSupplied", mock.Anything, mock.Anything).Return(reference.Accept())
		f.repo.On("Update", ctx, mock.MatchedBy(func(team *teams.Team) bool {
			return team.Description == "swift water" && team.StatusID == 1
		})).Return(nil)

		_, err := f.svc.Update(ctx, 7, UpdateTeamInput{Description: strPtr("swift water")})
		require.NoError(t, err)
		assert.Zero(t, f.tx.Calls)
		f.tx.Repos.AuditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
		f.repo.AssertExpectations(t)
	})

	t.Run("same status value writes no audit record", func(t *testing.T) {
		f := newTeamFixture()
		f.repo.On("FindByID", ctx, int64(7)).Return(existingTeam(7, 1), nil)
		f.validator.On("ValidateSupplied", mock.Anything, mock.Anything).Return(reference.Accept())
		f.repo.On("Update", ctx, mock.Anything).Return(nil)

		_, err := f.svc.Update(ctx, 7, UpdateTeamInput{StatusID: int64Ptr(1)})
		require.NoError(t, err)
		assert.Zero(t, f.tx.Calls)
	})

	t.Run("failed audit aborts the update", func(t *testing.T) {
		f := newTeamFixture()
		f.repo.On("FindByID", ctx, int64(7)).Return(existingTeam(7, 1), nil)
		f.validator.On("ValidateSupplied", mock.Anything, mock.Anything).Return(reference.Accept())
		f.tx.Repos.TeamRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		f.tx.Repos.AuditRepo.On("Append", mock.Anything, mock.Anything).Return(errors.New("audit table locked"))

		_, err := f.svc.Update(ctx, 7, UpdateTeamInput{StatusID: int64Ptr(3)})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeInternal, domainErr.Code)
	})

	t.Run("rejected supplied key never reaches the store", func(t *testing.T) {
		f := newTeamFixture()
		f.repo.On("FindByID", ctx, int64(7)).Return(existingTeam(7, 1), nil)
		key := reference.Key{KeySpec: teams.TeamKeySpecs[0], ID: int64Ptr(9)}
		f.validator.On("ValidateSupplied", mock.Anything, mock.Anything).
			Return(reference.Reject(key, "status 9 could not be verified: timeout"))

		_, err := f.svc.Update(ctx, 7, UpdateTeamInput{StatusID: int64Ptr(9)})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "status_id", domainErr.Field)
		assert.Zero(t, f.tx.Calls)
		f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("whitespace name is rejected instead of stored empty", func(t *testing.T) {
		f := newTeamFixture()
		f.repo.On("FindByID", ctx, int64(7)).Return(existingTeam(7, 1), nil)

		_, err := f.svc.Update(ctx, 7, UpdateTeamInput{Name: strPtr("   ")})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeValidationRejected, domainErr.Code)
		assert.Equal(t, "name", domainErr.Field)
		f.validator.AssertNotCalled(t, "ValidateSupplied", mock.Anything, mock.Anything)
		f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("zero leader clears the leader", func(t *testing.T) {
		f := newTeamFixture()
		team := existingTeam(7, 1)
		team.LeaderUserID = int64Ptr(4)
		f.repo.On("FindByID", ctx, int64(7)).Return(team, nil)
		f.validator.On("ValidateSupplied", mock.Anything, mock.MatchedBy(func(keys []reference.Key) bool {
			return !keys[3].Present()
		})).Return(reference.Accept())
		f.repo.On("Update", ctx, mock.MatchedBy(func(team *teams.Team) bool {
			return team.LeaderUserID == nil
		})).Return(nil)

		dto, err := f.svc.Update(ctx, 7, UpdateTeamInput{LeaderUserID: int64Ptr(0)})
		require.NoError(t, err)
		assert.Nil(t, dto.LeaderUserID)
	})

	t.Run("missing team is not found", func(t *testing.T) {
		f := newTeamFixture()
		f.repo.On("FindByID", ctx, int64(99)).Return(nil, shared.NewNotFound("team", 99))

		_, err := f.svc.Update(ctx, 99, UpdateTeamInput{Name: strPtr("Bravo")})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestTeamService_Reads(t *testing.T) {
	ctx := context.Background()
	f := newTeamFixture()
	f.repo.On("FindByID", ctx, int64(7)).Return(existingTeam(7, 1), nil)

	first, err := f.svc.GetByID(ctx, 7)
	require.NoError(t, err)
	second, err := f.svc.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	filter := shared.Filter{Page: 1, PageSize: 2}
	f.repo.On("FindAll", ctx, filter).Return([]teams.Team{*existingTeam(1, 1), *existingTeam(2, 1)}, nil)
	f.repo.On("Count", ctx, filter).Return(int64(3), nil)

	page, err := f.svc.List(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.TotalPages)

	f.repo.On("FindByCompany", ctx, int64(3)).Return([]teams.Team{*existingTeam(1, 1)}, nil)
	byCompany, err := f.svc.ListByCompany(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, byCompany, 1)
}

func TestTeamService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("team with members has active references", func(t *testing.T) {
		f := newTeamFixture()
		f.repo.On("FindByID", ctx, int64(7)).Return(existingTeam(7, 1), nil)
		f.repo.On("Delete", ctx, int64(7)).Return(shared.NewHasActiveReferences("team", 7))

		err := f.svc.Delete(ctx, 7)
		assert.ErrorIs(t, err, shared.ErrHasActiveReferences)
	})

	t.Run("missing team is not found", func(t *testing.T) {
		f := newTeamFixture()
		f.repo.On("FindByID", ctx, int64(7)).Return(nil, shared.NewNotFound("team", 7))

		assert.ErrorIs(t, f.svc.Delete(ctx, 7), shared.ErrNotFound)
		f.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes", func(t *testing.T) {
		f := newTeamFixture()
		f.repo.On("FindByID", ctx, int64(7)).Return(existingTeam(7, 1), nil)
		f.repo.On("Delete", ctx, int64(7)).Return(nil)
		assert.NoError(t, f.svc.Delete(ctx, 7))
	})
}
