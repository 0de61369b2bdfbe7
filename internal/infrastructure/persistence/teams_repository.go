package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/rescue-ops/backend/internal/domain/teams"
	"github.com/rescue-ops/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTeamRepository implements TeamRepository using GORM
type GormTeamRepository struct {
	gormStore[teams.Team, models.TeamModel, *models.TeamModel]
}

// NewGormTeamRepository creates a new GormTeamRepository
func NewGormTeamRepository(db *gorm.DB) *GormTeamRepository {
	return &GormTeamRepository{gormStore[teams.Team, models.TeamModel, *models.TeamModel]{
		db:            db,
		resource:      "team",
		uniqueFields:  []string{"name"},
		sortFields:    TeamSortFields,
		searchColumns: []string{"name", "description"},
		dependents:    []dependent{{table: "users", column: "team_id"}},
	}}
}

// FindByCompany lists the teams fielded by a company, newest first
func (r *GormTeamRepository) FindByCompany(ctx context.Context, companyID int64) ([]teams.Team, error) {
	return r.findWhere(ctx, "company_id = ?", companyID)
}

// GormTeamTypeRepository implements TeamTypeRepository using GORM
type GormTeamTypeRepository struct {
	gormStore[teams.TeamType, models.TeamTypeModel, *models.TeamTypeModel]
}

// NewGormTeamTypeRepository creates a new GormTeamTypeRepository
func NewGormTeamTypeRepository(db *gorm.DB) *GormTeamTypeRepository {
	return &GormTeamTypeRepository{gormStore[teams.TeamType, models.TeamTypeModel, *models.TeamTypeModel]{
		db:            db,
		resource:      "team type",
		uniqueFields:  []string{"name"},
		sortFields:    CatalogSortFields,
		searchColumns: []string{"name"},
		dependents:    []dependent{{table: "teams", column: "team_type_id"}},
	}}
}

// FindByName finds a team type by its unique name
func (r *GormTeamTypeRepository) FindByName(ctx context.Context, name string) (*teams.TeamType, error) {
	name = strings.TrimSpace(name)
	return r.findOneWhere(ctx,
		shared.NewDomainError(shared.CodeNotFound, fmt.Sprintf("team type %q not found", name)),
		"name = ?", name)
}

// GormCompanyRepository implements CompanyRepository using GORM
type GormCompanyRepository struct {
	gormStore[teams.Company, models.CompanyModel, *models.CompanyModel]
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{gormStore[teams.Company, models.CompanyModel, *models.CompanyModel]{
		db:            db,
		resource:      "company",
		uniqueFields:  []string{"name", "tax_id"},
		sortFields:    CompanySortFields,
		searchColumns: []string{"name", "tax_id"},
		dependents:    []dependent{{table: "teams", column: "company_id"}},
	}}
}

// Ensure repositories implement the domain interfaces
var (
	_ teams.TeamRepository     = (*GormTeamRepository)(nil)
	_ teams.TeamTypeRepository = (*GormTeamTypeRepository)(nil)
	_ teams.CompanyRepository  = (*GormCompanyRepository)(nil)
)
