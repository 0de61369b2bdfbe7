package seed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rescue-ops/backend/internal/application/shared/sharedtest"
	"github.com/rescue-ops/backend/internal/domain/identity"
	"github.com/rescue-ops/backend/internal/domain/incident"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/rescue-ops/backend/internal/domain/teams"
	"github.com/rescue-ops/backend/internal/infrastructure/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixed(ids ...int64) IDSource {
	return func(context.Context) []int64 { return ids }
}

func TestSeeder_SeedCatalogs(t *testing.T) {
	ctx := context.Background()
	userTypes := new(sharedtest.MockUserTypeRepository)
	teamTypes := new(sharedtest.MockTeamTypeRepository)
	s := NewSeeder(userTypes, teamTypes, nil, Sources{}, zap.NewNop())

	userTypes.On("FindByName", ctx, "Rescuer").Return(&identity.UserType{Name: "Rescuer"}, nil)
	userTypes.On("FindByName", ctx, mock.Anything).Return(nil, shared.NewNotFound("user type", 0))
	userTypes.On("Create", ctx, mock.Anything).Return(nil)
	teamTypes.On("FindByName", ctx, mock.Anything).Return(&teams.TeamType{}, nil)

	report, err := s.SeedCatalogs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.UserTypesCreated)
	assert.Zero(t, report.TeamTypesCreated)
	teamTypes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSeeder_SeedCatalogs_StoreFailure(t *testing.T) {
	ctx := context.Background()
	userTypes := new(sharedtest.MockUserTypeRepository)
	s := NewSeeder(userTypes, new(sharedtest.MockTeamTypeRepository), nil, Sources{}, zap.NewNop())
	userTypes.On("FindByName", ctx, mock.Anything).Return(nil, assert.AnError)

	_, err := s.SeedCatalogs(ctx)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSeeder_SeedIncidents(t *testing.T) {
	ctx := context.Background()

	t.Run("cycles through remote identifiers", func(t *testing.T) {
		repo := new(sharedtest.MockIncidentRepository)
		var written []*incident.Incident
		repo.On("CreateBatch", ctx, mock.Anything).
			Run(func(args mock.Arguments) { written = args.Get(1).([]*incident.Incident) }).
			Return(nil)
		s := NewSeeder(nil, nil, repo, Sources{
			Statuses:  fixed(10, 11),
			Citizens:  fixed(20),
			Addresses: fixed(30, 31, 32),
		}, zap.NewNop())

		report, err := s.SeedIncidents(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, 4, report.Created)
		assert.False(t, report.SyntheticStatuses)
		require.Len(t, written, 4)
		assert.Equal(t, int64(11), written[3].StatusID)
		assert.Equal(t, int64(20), written[3].CitizenID)
		assert.Equal(t, int64(30), written[3].AddressID)
		assert.Equal(t, "Seeded incident 4", written[3].Title)
	})

	t.Run("falls back to synthetic identifiers when owners are down", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		t.Cleanup(srv.Close)
		cfg := remote.Config{BaseURL: srv.URL, Timeout: time.Second}
		statuses, err := remote.NewStatusClient(cfg, zap.NewNop(), nil)
		require.NoError(t, err)
		citizens, err := remote.NewCitizenClient(cfg, zap.NewNop(), nil)
		require.NoError(t, err)

		repo := new(sharedtest.MockIncidentRepository)
		var written []*incident.Incident
		repo.On("CreateBatch", ctx, mock.Anything).
			Run(func(args mock.Arguments) { written = args.Get(1).([]*incident.Incident) }).
			Return(nil)
		s := NewSeeder(nil, nil, repo, Sources{
			Statuses:  FromList(statuses.ListAll, func(s remote.StatusRef) int64 { return s.ID }),
			Citizens:  FromList(citizens.ListAll, func(c remote.CitizenRef) int64 { return c.ID }),
			Addresses: fixed(30),
		}, zap.NewNop())

		report, err := s.SeedIncidents(ctx, 5)
		require.NoError(t, err)
		assert.True(t, report.SyntheticStatuses)
		assert.True(t, report.SyntheticCitizens)
		assert.False(t, report.SyntheticAddresses)
		for i, inc := range written {
			assert.Equal(t, syntheticIDs[i%3], inc.StatusID)
			assert.Contains(t, []int64{1, 2, 3}, inc.CitizenID)
			assert.Equal(t, int64(30), inc.AddressID)
		}
	})

	t.Run("rejects an out of range count", func(t *testing.T) {
		s := NewSeeder(nil, nil, nil, Sources{}, zap.NewNop())
		_, err := s.SeedIncidents(ctx, 0)
		assert.ErrorIs(t, err, shared.ErrValidationRejected)
		_, err = s.SeedIncidents(ctx, MaxIncidents+1)
		assert.ErrorIs(t, err, shared.ErrValidationRejected)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		repo := new(sharedtest.MockIncidentRepository)
		repo.On("CreateBatch", ctx, mock.Anything).Return(assert.AnError)
		s := NewSeeder(nil, nil, repo, Sources{Statuses: fixed(), Citizens: fixed(), Addresses: fixed()}, zap.NewNop())

		_, err := s.SeedIncidents(ctx, 1)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestFromList(t *testing.T) {
	src := FromList(func(context.Context) []remote.AddressRef {
		return []remote.AddressRef{{ID: 4}, {ID: 0}, {ID: 9}}
	}, func(a remote.AddressRef) int64 { return a.ID })
	assert.Equal(t, []int64{4, 9}, src(context.Background()))
}
