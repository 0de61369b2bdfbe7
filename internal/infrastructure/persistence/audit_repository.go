package persistence

import (
	"context"
	"fmt"

	"github.com/rescue-ops/backend/internal/domain/audit"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/rescue-ops/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// auditOrder is the presentation order of the trail
const auditOrder = "created_at DESC, id DESC"

// GormAuditRepository implements the append-only audit Repository using GORM.
// It has no update or delete path.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GormAuditRepository
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Append inserts a record and copies the assigned ID back
func (r *GormAuditRepository) Append(ctx context.Context, record *audit.Record) error {
	if record.Subject.IsZero() {
		return shared.NewAuditInputInvalid("audit record has no subject")
	}

	m := &models.AuditRecordModel{}
	m.FromDomain(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("append audit record: %w", err)
	}
	record.ID = m.ID
	return nil
}

// FindBySubject returns the records for one subject, newest first
func (r *GormAuditRepository) FindBySubject(ctx context.Context, subject audit.Subject) ([]audit.Record, error) {
	column := models.SubjectColumn(subject.Kind())
	if column == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("unknown audit subject kind %q", subject.Kind()))
	}

	var rows []models.AuditRecordModel
	if err := r.db.WithContext(ctx).
		Where(column+" = ?", subject.ID()).
		Order(auditOrder).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toAuditRecords(rows)
}

// FindAll returns every record, newest first, paged by the filter
func (r *GormAuditRepository) FindAll(ctx context.Context, filter shared.Filter) ([]audit.Record, error) {
	query := r.db.WithContext(ctx).Model(&models.AuditRecordModel{}).Order(auditOrder)
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	var rows []models.AuditRecordModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toAuditRecords(rows)
}

// Count counts every record
func (r *GormAuditRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AuditRecordModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func toAuditRecords(rows []models.AuditRecordModel) ([]audit.Record, error) {
	out := make([]audit.Record, 0, len(rows))
	for i := range rows {
		rec, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, nil
}

// Ensure GormAuditRepository implements audit.Repository
var _ audit.Repository = (*GormAuditRepository)(nil)
