package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/rescue-ops/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newStatusServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func newTestStatusClient(t *testing.T, baseURL string, logger *zap.Logger, metrics *telemetry.Metrics) *StatusClient {
	t.Helper()
	if logger == nil {
		logger = zap.NewNop()
	}
	c, err := NewStatusClient(Config{BaseURL: baseURL, Timeout: time.Second}, logger, metrics)
	require.NoError(t, err)
	return c
}

func TestConfig_Validate(t *testing.T) {
	t.Run("fills default timeout and trims slash", func(t *testing.T) {
		cfg := Config{BaseURL: "http://status.internal/api/v1/"}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, DefaultTimeout, cfg.Timeout)
		assert.Equal(t, "http://status.internal/api/v1", cfg.BaseURL)
	})

	t.Run("rejects missing url", func(t *testing.T) {
		cfg := Config{}
		assert.ErrorIs(t, cfg.Validate(), ErrConfigMissingBaseURL)
	})

	t.Run("rejects relative url", func(t *testing.T) {
		cfg := Config{BaseURL: "status/api"}
		assert.ErrorIs(t, cfg.Validate(), ErrConfigInvalidBaseURL)
	})

	t.Run("rejects negative timeout", func(t *testing.T) {
		cfg := Config{BaseURL: "http://status.internal", Timeout: -time.Second}
		assert.ErrorIs(t, cfg.Validate(), ErrConfigInvalidTimeout)
	})
}

func TestEntityClient_Lookup(t *testing.T) {
	t.Run("returns projection when found", func(t *testing.T) {
		srv := newStatusServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/statuses/3", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":3,"name":"active"}}`))
		})
		reg := prometheus.NewRegistry()
		metrics := telemetry.NewMetrics(reg)
		c := newTestStatusClient(t, srv.URL, nil, metrics)

		status, err := c.Lookup(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, StatusRef{ID: 3, Name: "active"}, status)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RemoteLookups.WithLabelValues(ResourceStatus, telemetry.OutcomeFound)))
	})

	t.Run("maps 404 to not found", func(t *testing.T) {
		srv := newStatusServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"error":{"code":"ERR_NOT_FOUND","message":"missing"}}`))
		})
		reg := prometheus.NewRegistry()
		metrics := telemetry.NewMetrics(reg)
		c := newTestStatusClient(t, srv.URL, nil, metrics)

		_, err := c.Lookup(context.Background(), 99)
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NotErrorIs(t, err, shared.ErrRemoteUnavailable)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RemoteLookups.WithLabelValues(ResourceStatus, telemetry.OutcomeNotFound)))
	})

	t.Run("maps server errors to transport error", func(t *testing.T) {
		srv := newStatusServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		})
		c := newTestStatusClient(t, srv.URL, nil, nil)

		_, err := c.Lookup(context.Background(), 1)
		require.Error(t, err)

		var te *TransportError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, http.StatusBadGateway, te.StatusCode)
		assert.Equal(t, ResourceStatus, te.Resource)
		assert.Contains(t, te.Detail, "upstream down")
		assert.ErrorIs(t, err, shared.ErrRemoteUnavailable)
		assert.NotErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("maps unreadable body to transport error", func(t *testing.T) {
		srv := newStatusServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		})
		c := newTestStatusClient(t, srv.URL, nil, nil)

		_, err := c.Lookup(context.Background(), 1)
		assert.ErrorIs(t, err, shared.ErrRemoteUnavailable)
	})

	t.Run("maps failed envelope to transport error", func(t *testing.T) {
		srv := newStatusServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":false}`))
		})
		c := newTestStatusClient(t, srv.URL, nil, nil)

		_, err := c.Lookup(context.Background(), 1)
		assert.ErrorIs(t, err, shared.ErrRemoteUnavailable)
	})

	t.Run("maps unreachable host to transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		c := newTestStatusClient(t, url, nil, nil)

		_, err := c.Lookup(context.Background(), 1)
		var te *TransportError
		require.True(t, errors.As(err, &te))
		assert.Zero(t, te.StatusCode)
	})

	t.Run("rejects non-positive id without a call", func(t *testing.T) {
		var calls atomic.Int32
		srv := newStatusServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		})
		c := newTestStatusClient(t, srv.URL, nil, nil)

		_, err := c.Lookup(context.Background(), 0)
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		assert.Zero(t, calls.Load())
	})

	t.Run("honours context cancellation", func(t *testing.T) {
		srv := newStatusServer(t, func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		})
		c := newTestStatusClient(t, srv.URL, nil, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := c.Lookup(ctx, 1)
		assert.ErrorIs(t, err, shared.ErrRemoteUnavailable)
	})

	t.Run("every call reaches the service", func(t *testing.T) {
		var calls atomic.Int32
		srv := newStatusServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":1,"name":"open"}}`))
		})
		c := newTestStatusClient(t, srv.URL, nil, nil)

		first, err := c.Lookup(context.Background(), 1)
		require.NoError(t, err)
		second, err := c.Lookup(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, int32(2), calls.Load())
	})
}

func TestEntityClient_Resolve(t *testing.T) {
	srv := newStatusServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/statuses/1" {
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":1}}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	c := newTestStatusClient(t, srv.URL, nil, nil)

	assert.NoError(t, c.Resolve(context.Background(), 1))
	assert.ErrorIs(t, c.Resolve(context.Background(), 2), shared.ErrNotFound)
}

func TestEntityClient_ListAll(t *testing.T) {
	t.Run("returns every entity", func(t *testing.T) {
		srv := newStatusServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/statuses", r.URL.Path)
			_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1,"name":"open"},{"id":2,"name":"closed"}]}`))
		})
		c := newTestStatusClient(t, srv.URL, nil, nil)

		all := c.ListAll(context.Background())
		require.Len(t, all, 2)
		assert.Equal(t, "closed", all[1].Name)
	})

	t.Run("returns empty and warns on failure", func(t *testing.T) {
		srv := newStatusServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		core, logs := observer.New(zap.WarnLevel)
		reg := prometheus.NewRegistry()
		metrics := telemetry.NewMetrics(reg)
		c := newTestStatusClient(t, srv.URL, zap.New(core), metrics)

		all := c.ListAll(context.Background())
		assert.NotNil(t, all)
		assert.Empty(t, all)
		assert.Equal(t, 1, logs.FilterMessage("remote list failed, returning empty result").Len())
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RemoteLookups.WithLabelValues(ResourceStatus, telemetry.OutcomeListFailed)))
	})

	t.Run("returns empty on null data", func(t *testing.T) {
		srv := newStatusServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":true,"data":null}`))
		})
		c := newTestStatusClient(t, srv.URL, nil, nil)

		all := c.ListAll(context.Background())
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})
}

func TestNewClients(t *testing.T) {
	base := "http://localhost:8080/api/v1"
	clients, err := NewClients(Endpoints{
		Status: base, Address: base, Photo: base, User: base, Team: base, Citizen: base,
	}, time.Second, zap.NewNop(), nil)
	require.NoError(t, err)
	assert.Equal(t, ResourceCitizen, clients.Citizen.Resource())
	assert.Equal(t, ResourceAddress, clients.Address.Resource())

	_, err = NewClients(Endpoints{Status: base}, time.Second, zap.NewNop(), nil)
	assert.ErrorIs(t, err, ErrConfigMissingBaseURL)
}
