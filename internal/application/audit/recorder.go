// Package audit records status transitions and serves the audit trail.
package audit

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rescue-ops/backend/internal/domain/audit"
	"github.com/rescue-ops/backend/internal/domain/shared"
)

// RecordObserver counts appended records. *telemetry.Metrics satisfies it.
type RecordObserver interface {
	IncAuditRecord(subjectKind string)
}

// Recorder appends one audit record per observed status transition.
// The creation timestamp always comes from the recorder's clock.
type Recorder struct {
	repo     audit.Repository
	now      func() time.Time
	observer RecordObserver
}

// RecorderOption configures a Recorder
type RecorderOption func(*Recorder)

// WithClock overrides the clock used to stamp records
func WithClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) { r.now = now }
}

// WithObserver reports every appended record to o
func WithObserver(o RecordObserver) RecorderOption {
	return func(r *Recorder) { r.observer = o }
}

// NewRecorder creates a recorder writing to repo
func NewRecorder(repo audit.Repository, opts ...RecorderOption) *Recorder {
	r := &Recorder{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithRepository returns a copy of the recorder writing to repo, typically a
// repository bound to the caller's transaction.
func (r *Recorder) WithRepository(repo audit.Repository) *Recorder {
	c := *r
	c.repo = repo
	return &c
}

// Record validates the transition and appends it. A missing subject, a
// missing or non-positive status, or a blank or over-long detail fails with
// AUDIT_INPUT_INVALID and nothing is written.
func (r *Recorder) Record(ctx context.Context, subject audit.Subject, previousStatusID, newStatusID *int64, detail string) (*audit.Record, error) {
	if subject.IsZero() {
		return nil, shared.NewAuditInputInvalid("audit subject is required")
	}
	if previousStatusID == nil || *previousStatusID <= 0 {
		return nil, shared.NewAuditInputInvalid("previous status is required")
	}
	if newStatusID == nil || *newStatusID <= 0 {
		return nil, shared.NewAuditInputInvalid("new status is required")
	}
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return nil, shared.NewAuditInputInvalid("detail is required")
	}
	if utf8.RuneCountInString(detail) > audit.MaxDetailLength {
		return nil, shared.NewAuditInputInvalid("detail exceeds 255 characters")
	}

	record := &audit.Record{
		Subject:          subject,
		PreviousStatusID: *previousStatusID,
		NewStatusID:      *newStatusID,
		Detail:           detail,
		CreatedAt:        r.now().UTC(),
	}
	if err := r.repo.Append(ctx, record); err != nil {
		return nil, err
	}

	if r.observer != nil {
		r.observer.IncAuditRecord(string(subject.Kind()))
	}
	return record, nil
}
