package audit

import (
	"context"
	"time"

	"github.com/rescue-ops/backend/internal/domain/shared"
)

// MaxDetailLength bounds the free-text detail of a record.
const MaxDetailLength = 255

// Record is one observed status transition. Records are never updated or
// removed once appended.
type Record struct {
	ID               int64
	Subject          Subject
	PreviousStatusID int64
	NewStatusID      int64
	Detail           string
	CreatedAt        time.Time
}

// Repository is the append-only store of audit records.
// Read methods return records newest first.
type Repository interface {
	Append(ctx context.Context, record *Record) error
	FindBySubject(ctx context.Context, subject Subject) ([]Record, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Record, error)
	Count(ctx context.Context) (int64, error)
}
