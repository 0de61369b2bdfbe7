package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Remote lookup outcomes
const (
	OutcomeFound       = "found"
	OutcomeNotFound    = "not_found"
	OutcomeUnavailable = "unavailable"
	OutcomeListFailed  = "list_failed"
	OutcomeListed      = "listed"
)

// Metrics holds the Prometheus collectors for the reference and audit paths.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	RemoteLookups       *prometheus.CounterVec
	RemoteLookupLatency *prometheus.HistogramVec
	AuditRecords        *prometheus.CounterVec
	ValidationRejects   *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RemoteLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rescue_remote_lookups_total",
			Help: "Remote entity lookups by resource and outcome",
		}, []string{"resource", "outcome"}),

		RemoteLookupLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rescue_remote_lookup_duration_seconds",
			Help:    "Duration of remote entity lookups by resource",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"resource"}),

		AuditRecords: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rescue_audit_records_total",
			Help: "Audit records appended by subject kind",
		}, []string{"subject_kind"}),

		ValidationRejects: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rescue_validation_rejections_total",
			Help: "Writes rejected by reference validation, by aggregate and field",
		}, []string{"aggregate", "field"}),
	}
}

// ObserveLookup records one remote call.
func (m *Metrics) ObserveLookup(resource, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.RemoteLookups.WithLabelValues(resource, outcome).Inc()
	m.RemoteLookupLatency.WithLabelValues(resource).Observe(d.Seconds())
}

// IncAuditRecord records an appended audit record.
func (m *Metrics) IncAuditRecord(subjectKind string) {
	if m == nil {
		return
	}
	m.AuditRecords.WithLabelValues(subjectKind).Inc()
}

// IncValidationReject records a write rejected on field.
func (m *Metrics) IncValidationReject(aggregate, field string) {
	if m == nil {
		return
	}
	m.ValidationRejects.WithLabelValues(aggregate, field).Inc()
}
