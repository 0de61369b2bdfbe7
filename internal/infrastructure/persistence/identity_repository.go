package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/rescue-ops/backend/internal/domain/identity"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/rescue-ops/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	gormStore[identity.User, models.UserModel, *models.UserModel]
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{gormStore[identity.User, models.UserModel, *models.UserModel]{
		db:            db,
		resource:      "user",
		uniqueFields:  []string{"email"},
		sortFields:    UserSortFields,
		searchColumns: []string{"name", "email"},
		dependents:    []dependent{{table: "teams", column: "leader_user_id"}},
	}}
}

// GormUserTypeRepository implements UserTypeRepository using GORM
type GormUserTypeRepository struct {
	gormStore[identity.UserType, models.UserTypeModel, *models.UserTypeModel]
}

// NewGormUserTypeRepository creates a new GormUserTypeRepository
func NewGormUserTypeRepository(db *gorm.DB) *GormUserTypeRepository {
	return &GormUserTypeRepository{gormStore[identity.UserType, models.UserTypeModel, *models.UserTypeModel]{
		db:            db,
		resource:      "user type",
		uniqueFields:  []string{"name"},
		sortFields:    CatalogSortFields,
		searchColumns: []string{"name"},
		dependents:    []dependent{{table: "users", column: "user_type_id"}},
	}}
}

// FindByName finds a user type by its unique name
func (r *GormUserTypeRepository) FindByName(ctx context.Context, name string) (*identity.UserType, error) {
	name = strings.TrimSpace(name)
	return r.findOneWhere(ctx,
		shared.NewDomainError(shared.CodeNotFound, fmt.Sprintf("user type %q not found", name)),
		"name = ?", name)
}

// Ensure repositories implement the domain interfaces
var (
	_ identity.UserRepository     = (*GormUserRepository)(nil)
	_ identity.UserTypeRepository = (*GormUserTypeRepository)(nil)
)
