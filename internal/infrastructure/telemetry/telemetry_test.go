package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	tp, err := NewTracerProvider(context.Background(), Config{ServiceName: "test"}, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.False(t, tp.IsEnabled())
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(1).Description())
	assert.Equal(t, sdktrace.NeverSample().Description(), sampler(0).Description())
	assert.Contains(t, sampler(0.25).Description(), "TraceIDRatioBased")
}

func TestSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	ctx, parent := StartSpan(context.Background(), "incident.create")
	_, child := StartClientSpan(ctx, "remote.status.lookup")
	RecordError(child, errors.New("unexpected status 502"))
	RecordError(child, nil)
	child.End()
	parent.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "remote.status.lookup", spans[0].Name)
	assert.Equal(t, trace.SpanKindClient, spans[0].SpanKind)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, spans[1].SpanContext.TraceID(), spans[0].Parent.TraceID())
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveLookup("status", OutcomeFound, 10*time.Millisecond)
	m.ObserveLookup("status", OutcomeFound, 20*time.Millisecond)
	m.ObserveLookup("address", OutcomeUnavailable, time.Second)
	m.IncAuditRecord("team")
	m.IncValidationReject("incident", "address_id")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RemoteLookups.WithLabelValues("status", OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RemoteLookups.WithLabelValues("address", OutcomeUnavailable)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuditRecords.WithLabelValues("team")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationRejects.WithLabelValues("incident", "address_id")))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() {
		nilMetrics.ObserveLookup("status", OutcomeFound, time.Millisecond)
		nilMetrics.IncAuditRecord("user")
		nilMetrics.IncValidationReject("user", "status_id")
	})
}

func TestRegisterDBTracing(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	logger := zaptest.NewLogger(t)

	require.NoError(t, RegisterDBTracing(db, DBTracingConfig{}, logger))
	require.NoError(t, RegisterDBTracing(db, DBTracingConfig{Enabled: true, DBName: "rescue"}, logger))
	assert.NoError(t, db.Exec("SELECT 1").Error)
}
