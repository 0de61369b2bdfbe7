package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rescue-ops/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// domainModel is implemented by *M for a persistence model M that maps to
// the domain entity T.
type domainModel[T any, M any] interface {
	*M
	ToDomain() *T
	FromDomain(*T)
}

// dependent names a column in another table that points at this one.
type dependent struct {
	table  string
	column string
}

// gormStore is the CRUD core shared by the aggregate repositories.
type gormStore[T any, M any, PM domainModel[T, M]] struct {
	db            *gorm.DB
	resource      string
	uniqueFields  []string
	sortFields    map[string]bool
	searchColumns []string
	dependents    []dependent
}

// Create inserts the entity and copies the assigned ID and timestamps back.
func (s *gormStore[T, M, PM]) Create(ctx context.Context, entity *T) error {
	m := PM(new(M))
	m.FromDomain(entity)
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return s.translate(ctx, err, m)
	}
	*entity = *m.ToDomain()
	return nil
}

// FindByID finds an entity by its ID
func (s *gormStore[T, M, PM]) FindByID(ctx context.Context, id int64) (*T, error) {
	var m M
	if err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFound(s.resource, id)
		}
		return nil, err
	}
	return PM(&m).ToDomain(), nil
}

// FindAll finds all entities matching the filter
func (s *gormStore[T, M, PM]) FindAll(ctx context.Context, filter shared.Filter) ([]T, error) {
	var rows []M
	query := s.applyFilter(s.db.WithContext(ctx).Model(new(M)), filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return s.toDomain(rows), nil
}

// Count counts entities matching the filter search, ignoring paging
func (s *gormStore[T, M, PM]) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := s.applySearch(s.db.WithContext(ctx).Model(new(M)), filter.Search)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update writes every column of the entity except its creation time.
func (s *gormStore[T, M, PM]) Update(ctx context.Context, entity *T) error {
	m := PM(new(M))
	m.FromDomain(entity)
	result := s.db.WithContext(ctx).Model(m).Select("*").Omit("id", "created_at").Updates(m)
	if result.Error != nil {
		return s.translate(ctx, result.Error, m)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFound(s.resource, s.idOf(m))
	}
	*entity = *m.ToDomain()
	return nil
}

// Delete deletes an entity. It fails with HAS_ACTIVE_REFERENCES while rows in
// dependent tables still point at it.
func (s *gormStore[T, M, PM]) Delete(ctx context.Context, id int64) error {
	db := s.db.WithContext(ctx)
	for _, d := range s.dependents {
		var count int64
		if err := db.Table(d.table).Where(d.column+" = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return shared.NewHasActiveReferences(s.resource, id)
		}
	}

	result := db.Delete(new(M), "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return shared.NewHasActiveReferences(s.resource, id)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFound(s.resource, id)
	}
	return nil
}

// ExistsByID checks if an entity exists by ID
func (s *gormStore[T, M, PM]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(new(M)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// findWhere finds entities matching a condition, newest first
func (s *gormStore[T, M, PM]) findWhere(ctx context.Context, query string, args ...any) ([]T, error) {
	var rows []M
	if err := s.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return s.toDomain(rows), nil
}

// findOneWhere finds the first entity matching a condition
func (s *gormStore[T, M, PM]) findOneWhere(ctx context.Context, notFound error, query string, args ...any) (*T, error) {
	var m M
	if err := s.db.WithContext(ctx).Where(query, args...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, err
	}
	return PM(&m).ToDomain(), nil
}

// applyFilter applies search, ordering and paging
func (s *gormStore[T, M, PM]) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = s.applySearch(query, filter.Search)

	sortField := ValidateSortField(filter.OrderBy, s.sortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(sortField + " " + sortOrder).Order("id " + sortOrder)

	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	return query
}

// applySearch matches the search term case-insensitively against the
// searchable columns
func (s *gormStore[T, M, PM]) applySearch(query *gorm.DB, search string) *gorm.DB {
	search = strings.TrimSpace(search)
	if search == "" || len(s.searchColumns) == 0 {
		return query
	}

	pattern := "%" + strings.ToLower(search) + "%"
	conds := make([]string, len(s.searchColumns))
	args := make([]any, len(s.searchColumns))
	for i, col := range s.searchColumns {
		conds[i] = "LOWER(" + col + ") LIKE ?"
		args[i] = pattern
	}
	return query.Where(strings.Join(conds, " OR "), args...)
}

// translate maps constraint violations onto domain errors. m is the row
// that was being written, used to name the colliding unique column.
func (s *gormStore[T, M, PM]) translate(ctx context.Context, err error, m PM) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		if len(s.uniqueFields) > 0 {
			return shared.NewUniqueViolation(s.collidingField(ctx, m))
		}
		return shared.NewIntegrityConflict(fmt.Sprintf("%s already exists", s.resource))
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.NewIntegrityConflict(fmt.Sprintf("%s references a row that does not exist", s.resource))
	}
	return err
}

// collidingField finds the unique column whose value in m already belongs
// to another row. Translated duplicate-key errors carry no constraint name,
// so with several unique columns each is checked in order. The first column
// is reported when none can be confirmed, e.g. inside an aborted transaction.
func (s *gormStore[T, M, PM]) collidingField(ctx context.Context, m PM) string {
	if len(s.uniqueFields) == 1 || m == nil {
		return s.uniqueFields[0]
	}
	id := s.idOf(m)
	for _, column := range s.uniqueFields {
		var count int64
		err := s.db.WithContext(ctx).Model(new(M)).
			Where(m, column).
			Where("id <> ?", id).
			Count(&count).Error
		if err == nil && count > 0 {
			return column
		}
	}
	return s.uniqueFields[0]
}

func (s *gormStore[T, M, PM]) toDomain(rows []M) []T {
	out := make([]T, 0, len(rows))
	for i := range rows {
		out = append(out, *PM(&rows[i]).ToDomain())
	}
	return out
}

func (s *gormStore[T, M, PM]) idOf(m PM) int64 {
	if e, ok := any(m.ToDomain()).(interface{ GetID() int64 }); ok {
		return e.GetID()
	}
	return 0
}
