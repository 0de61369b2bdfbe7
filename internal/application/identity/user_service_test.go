package identity

import (
	"context"
	"testing"

	appaudit "github.com/rescue-ops/backend/internal/application/audit"
	"github.com/rescue-ops/backend/internal/application/shared/sharedtest"
	"github.com/rescue-ops/backend/internal/domain/audit"
	"github.com/rescue-ops/backend/internal/domain/identity"
	"github.com/rescue-ops/backend/internal/domain/reference"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func int64Ptr(v int64) *int64 { return &v }

type resolverCalls map[reference.Kind]int

func newUserService(t *testing.T, statusErr error) (*UserService, *sharedtest.MockUserRepository, *sharedtest.TransactionScope, resolverCalls) {
	t.Helper()
	calls := resolverCalls{}
	track := func(kind reference.Kind, err error) reference.Resolver {
		return reference.ResolverFunc(func(ctx context.Context, id int64) error {
			calls[kind]++
			return err
		})
	}
	v := reference.NewValidator(map[reference.Kind]reference.Resolver{
		reference.KindStatus:   track(reference.KindStatus, statusErr),
		reference.KindUserType: track(reference.KindUserType, nil),
		reference.KindTeam:     track(reference.KindTeam, nil),
		reference.KindPhoto:    track(reference.KindPhoto, nil),
	})
	repo := new(sharedtest.MockUserRepository)
	tx := sharedtest.NewTransactionScope()
	recorder := appaudit.NewRecorder(new(sharedtest.MockAuditRepository))
	return NewUserService(repo, v, nil, tx, recorder, zap.NewNop()), repo, tx, calls
}

func existingUser(id int64) *identity.User {
	u := identity.NewUser("Lucia Vega", "lucia@rescue.example", "", 1, 2)
	u.ID = id
	return u
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	input := CreateUserInput{Name: "Lucia Vega", Email: "Lucia@Rescue.example", StatusID: 1, UserTypeID: 2}

	t.Run("unset optional keys make no lookups", func(t *testing.T) {
		svc, repo, _, calls := newUserService(t, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		dto, err := svc.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "lucia@rescue.example", dto.Email)
		assert.Equal(t, resolverCalls{reference.KindStatus: 1, reference.KindUserType: 1}, calls)
	})

	t.Run("unreachable status service rejects before the store", func(t *testing.T) {
		svc, repo, _, calls := newUserService(t, shared.NewDomainError(shared.CodeRemoteUnavailable, "status service unreachable"))

		_, err := svc.Create(ctx, input)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeValidationRejected, domainErr.Code)
		assert.Equal(t, "status_id", domainErr.Field)
		assert.Zero(t, calls[reference.KindUserType])
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email is rejected by field", func(t *testing.T) {
		svc, repo, _, _ := newUserService(t, nil)
		repo.On("Create", ctx, mock.Anything).Return(shared.NewUniqueViolation("email"))

		_, err := svc.Create(ctx, input)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeValidationRejected, domainErr.Code)
		assert.Equal(t, "email", domainErr.Field)
	})

	t.Run("malformed email never resolves references", func(t *testing.T) {
		svc, _, _, calls := newUserService(t, nil)
		bad := input
		bad.Email = "lucia"

		_, err := svc.Create(ctx, bad)
		assert.ErrorIs(t, err, shared.ErrValidationRejected)
		assert.Empty(t, calls)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("status change is audited in the same transaction", func(t *testing.T) {
		svc, repo, tx, _ := newUserService(t, nil)
		repo.On("FindByID", ctx, int64(4)).Return(existingUser(4), nil)
		tx.Repos.UserRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		tx.Repos.AuditRepo.On("Append", mock.Anything, mock.MatchedBy(func(r *audit.Record) bool {
			return r.Subject == audit.UserSubject(4) && r.PreviousStatusID == 1 && r.NewStatusID == 2
		})).Return(nil)

		dto, err := svc.Update(ctx, 4, UpdateUserInput{StatusID: int64Ptr(2)})
		require.NoError(t, err)
		assert.Equal(t, int64(2), dto.StatusID)
		assert.Equal(t, 1, tx.Calls)
		tx.Repos.AuditRepo.AssertNumberOfCalls(t, "Append", 1)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("clearing the team writes no audit record", func(t *testing.T) {
		svc, repo, tx, calls := newUserService(t, nil)
		user := existingUser(4)
		user.TeamID = int64Ptr(9)
		repo.On("FindByID", ctx, int64(4)).Return(user, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(u *identity.User) bool { return u.TeamID == nil })).Return(nil)

		dto, err := svc.Update(ctx, 4, UpdateUserInput{TeamID: int64Ptr(0)})
		require.NoError(t, err)
		assert.Nil(t, dto.TeamID)
		assert.Zero(t, tx.Calls)
		assert.Empty(t, calls)
	})

	t.Run("transaction failure surfaces as internal", func(t *testing.T) {
		svc, repo, tx, _ := newUserService(t, nil)
		tx.Err = assert.AnError
		repo.On("FindByID", ctx, int64(4)).Return(existingUser(4), nil)

		_, err := svc.Update(ctx, 4, UpdateUserInput{StatusID: int64Ptr(3)})
		assert.ErrorIs(t, err, shared.NewInternalError(""))
	})

	t.Run("missing user is not found before validation", func(t *testing.T) {
		svc, repo, _, _ := newUserService(t, nil)
		repo.On("FindByID", ctx, int64(5)).Return(nil, shared.NewNotFound("user", 5))

		_, err := svc.Update(ctx, 5, UpdateUserInput{StatusID: int64Ptr(-1)})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newUserService(t, nil)
	repo.On("FindByID", ctx, int64(4)).Return(existingUser(4), nil)
	repo.On("Delete", ctx, int64(4)).Return(shared.NewHasActiveReferences("user", 4))

	err := svc.Delete(ctx, 4)
	assert.ErrorIs(t, err, shared.ErrHasActiveReferences)
	assert.ErrorIs(t, err, shared.ErrIntegrityConflict)
}

func TestUserTypeService(t *testing.T) {
	ctx := context.Background()
	repo := new(sharedtest.MockUserTypeRepository)
	svc := NewUserTypeService(repo, zap.NewNop())

	repo.On("Create", ctx, mock.Anything).Return(shared.NewUniqueViolation("name"))
	_, err := svc.Create(ctx, CreateUserTypeInput{Name: "Rescuer"})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "name", domainErr.Field)

	repo.On("FindByName", ctx, "Rescuer").Return(&identity.UserType{Name: "Rescuer"}, nil)
	dto, err := svc.GetByName(ctx, "Rescuer")
	require.NoError(t, err)
	assert.Equal(t, "Rescuer", dto.Name)

	filter := shared.Filter{Page: 1, PageSize: 10}
	repo.On("FindAll", ctx, filter).Return([]identity.UserType{{Name: "Rescuer"}}, nil)
	repo.On("Count", ctx, filter).Return(int64(1), nil)
	page, err := svc.List(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
}
