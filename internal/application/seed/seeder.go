// Package seed fills a fresh database with catalog rows and sample incidents.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rescue-ops/backend/internal/domain/identity"
	"github.com/rescue-ops/backend/internal/domain/incident"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/rescue-ops/backend/internal/domain/teams"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MaxIncidents caps a single SeedIncidents run.
const MaxIncidents = 10000

// syntheticIDs stand in for a remote kind whose owner returned nothing.
var syntheticIDs = []int64{1, 2, 3}

// DefaultUserTypes and DefaultTeamTypes are created by SeedCatalogs.
var (
	DefaultUserTypes = []Entry{
		{Name: "Rescuer", Description: "Field rescue operator"},
		{Name: "Coordinator", Description: "Coordinates teams and incidents"},
		{Name: "Volunteer", Description: "Civil volunteer"},
	}
	DefaultTeamTypes = []Entry{
		{Name: "Search and Rescue", Description: "Locates and extracts people"},
		{Name: "Medical", Description: "First aid and evacuation"},
		{Name: "Logistics", Description: "Supplies and transport"},
	}
)

// Entry is a catalog row to create
type Entry struct {
	Name        string
	Description string
}

// IDSource lists the identifiers of one remote kind. It never fails; an
// unreachable owner yields an empty list.
type IDSource func(ctx context.Context) []int64

// FromList adapts a remote ListAll to an IDSource.
func FromList[T any](list func(context.Context) []T, id func(T) int64) IDSource {
	return func(ctx context.Context) []int64 {
		items := list(ctx)
		ids := make([]int64, 0, len(items))
		for _, item := range items {
			if v := id(item); v > 0 {
				ids = append(ids, v)
			}
		}
		return ids
	}
}

// Sources provides the remote identifiers incidents are built from.
type Sources struct {
	Statuses  IDSource
	Citizens  IDSource
	Addresses IDSource
}

// Report summarises a seeding run
type Report struct {
	UserTypesCreated   int  `json:"user_types_created"`
	TeamTypesCreated   int  `json:"team_types_created"`
	Created            int  `json:"incidents_created"`
	SyntheticStatuses  bool `json:"synthetic_statuses"`
	SyntheticCitizens  bool `json:"synthetic_citizens"`
	SyntheticAddresses bool `json:"synthetic_addresses"`
}

// Seeder writes seed data straight through the stores
type Seeder struct {
	userTypes identity.UserTypeRepository
	teamTypes teams.TeamTypeRepository
	incidents incident.IncidentRepository
	sources   Sources
	logger    *zap.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(
	userTypes identity.UserTypeRepository,
	teamTypes teams.TeamTypeRepository,
	incidents incident.IncidentRepository,
	sources Sources,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		userTypes: userTypes,
		teamTypes: teamTypes,
		incidents: incidents,
		sources:   sources,
		logger:    logger,
	}
}

// SeedCatalogs creates the default user and team types that do not exist
// yet. Running it twice creates nothing the second time.
func (s *Seeder) SeedCatalogs(ctx context.Context) (*Report, error) {
	report := &Report{}

	for _, e := range DefaultUserTypes {
		_, err := s.userTypes.FindByName(ctx, e.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return report, fmt.Errorf("look up user type %q: %w", e.Name, err)
		}
		if err := s.userTypes.Create(ctx, identity.NewUserType(e.Name, e.Description)); err != nil {
			return report, fmt.Errorf("create user type %q: %w", e.Name, err)
		}
		report.UserTypesCreated++
	}

	for _, e := range DefaultTeamTypes {
		_, err := s.teamTypes.FindByName(ctx, e.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return report, fmt.Errorf("look up team type %q: %w", e.Name, err)
		}
		if err := s.teamTypes.Create(ctx, teams.NewTeamType(e.Name, e.Description)); err != nil {
			return report, fmt.Errorf("create team type %q: %w", e.Name, err)
		}
		report.TeamTypesCreated++
	}

	s.logger.Info("Catalogs seeded",
		zap.Int("user_types_created", report.UserTypesCreated),
		zap.Int("team_types_created", report.TeamTypesCreated))
	return report, nil
}

// SeedIncidents creates n sample incidents. Statuses, citizens and addresses
// are fetched concurrently from their owners; any kind that comes back empty
// is replaced by synthetic identifiers 1..3. Incidents are written in bulk
// without reference validation.
func (s *Seeder) SeedIncidents(ctx context.Context, n int) (*Report, error) {
	if n <= 0 || n > MaxIncidents {
		return nil, shared.NewValidationRejected("count", fmt.Sprintf("must be between 1 and %d", MaxIncidents))
	}

	var statuses, citizens, addresses []int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		statuses = s.sources.Statuses(gctx)
		return nil
	})
	g.Go(func() error {
		citizens = s.sources.Citizens(gctx)
		return nil
	})
	g.Go(func() error {
		addresses = s.sources.Addresses(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{}
	statuses, report.SyntheticStatuses = orSynthetic(statuses)
	citizens, report.SyntheticCitizens = orSynthetic(citizens)
	addresses, report.SyntheticAddresses = orSynthetic(addresses)
	if report.SyntheticStatuses || report.SyntheticCitizens || report.SyntheticAddresses {
		s.logger.Warn("Seeding with synthetic identifiers",
			zap.Bool("statuses", report.SyntheticStatuses),
			zap.Bool("citizens", report.SyntheticCitizens),
			zap.Bool("addresses", report.SyntheticAddresses))
	}

	batch := make([]*incident.Incident, n)
	for i := range batch {
		batch[i] = incident.NewIncident(
			fmt.Sprintf("Seeded incident %d", i+1),
			"Generated sample incident",
			statuses[i%len(statuses)],
			citizens[i%len(citizens)],
			addresses[i%len(addresses)],
		)
	}
	if err := s.incidents.CreateBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("create incidents: %w", err)
	}
	report.Created = len(batch)

	s.logger.Info("Incidents seeded", zap.Int("count", report.Created))
	return report, nil
}

func orSynthetic(ids []int64) ([]int64, bool) {
	if len(ids) == 0 {
		return syntheticIDs, true
	}
	return ids, false
}
