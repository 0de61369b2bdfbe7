package persistence

import (
	"context"

	"github.com/rescue-ops/backend/internal/domain/incident"
	"github.com/rescue-ops/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// batchSize bounds the rows per INSERT in CreateBatch
const batchSize = 100

// GormIncidentRepository implements IncidentRepository using GORM
type GormIncidentRepository struct {
	gormStore[incident.Incident, models.IncidentModel, *models.IncidentModel]
}

// NewGormIncidentRepository creates a new GormIncidentRepository
func NewGormIncidentRepository(db *gorm.DB) *GormIncidentRepository {
	return &GormIncidentRepository{gormStore[incident.Incident, models.IncidentModel, *models.IncidentModel]{
		db:            db,
		resource:      "incident",
		sortFields:    IncidentSortFields,
		searchColumns: []string{"title", "description"},
	}}
}

// CreateBatch inserts incidents in batches and copies the assigned IDs back
func (r *GormIncidentRepository) CreateBatch(ctx context.Context, incidents []*incident.Incident) error {
	if len(incidents) == 0 {
		return nil
	}

	rows := make([]*models.IncidentModel, len(incidents))
	for i, inc := range incidents {
		rows[i] = &models.IncidentModel{}
		rows[i].FromDomain(inc)
	}

	if err := r.db.WithContext(ctx).CreateInBatches(rows, batchSize).Error; err != nil {
		return r.translate(ctx, err, nil)
	}

	for i, row := range rows {
		*incidents[i] = *row.ToDomain()
	}
	return nil
}

// Ensure GormIncidentRepository implements IncidentRepository
var _ incident.IncidentRepository = (*GormIncidentRepository)(nil)
