// Package remote looks up entities owned by other services.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/rescue-ops/backend/internal/infrastructure/logger"
	"github.com/rescue-ops/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// maxErrorBody caps how much of an error response is kept for diagnostics.
const maxErrorBody = 512

// envelope is the response shape served by every owning service.
type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// EntityClient looks up one externally owned resource kind.
//
// Lookup is the interactive path: every call crosses the network and its
// failures are returned to the caller. ListAll is the bulk path used only by
// seeding and never fails. The client holds no per-request state and is safe
// for concurrent use.
type EntityClient[T any] struct {
	resource   string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *telemetry.Metrics
}

// NewEntityClient creates a client for resource served under cfg.BaseURL.
func NewEntityClient[T any](resource string, cfg Config, logger *zap.Logger, metrics *telemetry.Metrics) (*EntityClient[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s client: %w", resource, err)
	}
	return &EntityClient[T]{
		resource: resource,
		baseURL:  cfg.BaseURL,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger:  logger.Named("remote").With(zap.String("resource", resource)),
		metrics: metrics,
	}, nil
}

// Resource returns the resource path segment this client queries.
func (c *EntityClient[T]) Resource() string {
	return c.resource
}

// Lookup fetches the projection of the entity with the given id.
// It returns an error matching shared.ErrNotFound on a 404 and a
// *TransportError for anything else that is not a 2xx.
func (c *EntityClient[T]) Lookup(ctx context.Context, id int64) (T, error) {
	var zero T
	if id <= 0 {
		return zero, shared.NewDomainError(shared.CodeInvalidInput,
			fmt.Sprintf("%s id must be positive, got %d", c.resource, id))
	}

	ctx, span := telemetry.StartClientSpan(ctx, "remote."+c.resource+".lookup",
		attribute.String(telemetry.AttrResource, c.resource),
		attribute.Int64(telemetry.AttrEntityID, id),
	)
	defer span.End()

	start := time.Now()
	var env envelope[T]
	status, err := c.get(ctx, c.baseURL+"/"+c.resource+"/"+strconv.FormatInt(id, 10), &env)

	outcome := telemetry.OutcomeFound
	switch {
	case err != nil:
		outcome = telemetry.OutcomeUnavailable
	case status == http.StatusNotFound:
		outcome = telemetry.OutcomeNotFound
		err = shared.NewNotFound(c.resource, id)
	case !env.Success:
		outcome = telemetry.OutcomeUnavailable
		err = c.transportError(status, "response reported failure", nil)
	}
	c.metrics.ObserveLookup(c.resource, outcome, time.Since(start))
	span.SetAttributes(attribute.String(telemetry.AttrOutcome, outcome))

	if err != nil {
		if outcome == telemetry.OutcomeUnavailable {
			telemetry.RecordError(span, err)
		}
		return zero, err
	}
	return env.Data, nil
}

// Resolve reports whether the entity exists, for use as a reference resolver.
func (c *EntityClient[T]) Resolve(ctx context.Context, id int64) error {
	_, err := c.Lookup(ctx, id)
	return err
}

// ListAll fetches every entity of the resource. On any failure it logs a
// warning and returns an empty slice so bulk callers can fall back to
// synthetic data.
func (c *EntityClient[T]) ListAll(ctx context.Context) []T {
	ctx, span := telemetry.StartClientSpan(ctx, "remote."+c.resource+".list",
		attribute.String(telemetry.AttrResource, c.resource),
	)
	defer span.End()

	start := time.Now()
	var env envelope[[]T]
	status, err := c.get(ctx, c.baseURL+"/"+c.resource, &env)
	if err == nil && (status == http.StatusNotFound || !env.Success) {
		err = c.transportError(status, "list request failed", nil)
	}
	if err != nil {
		c.metrics.ObserveLookup(c.resource, telemetry.OutcomeListFailed, time.Since(start))
		telemetry.RecordError(span, err)
		c.logger.Warn("remote list failed, returning empty result",
			zap.String("trace_id", logger.GetTraceID(ctx)),
			zap.Error(err),
		)
		return []T{}
	}

	c.metrics.ObserveLookup(c.resource, telemetry.OutcomeListed, time.Since(start))
	if env.Data == nil {
		return []T{}
	}
	return env.Data
}

// get performs the request and decodes 2xx bodies into out. A 404 is
// returned as a status with a nil error; every other failure is a
// *TransportError.
func (c *EntityClient[T]) get(ctx context.Context, url string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, c.transportError(0, "build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if requestID := logger.GetRequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, c.transportError(0, err.Error(), err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp.StatusCode, c.transportError(resp.StatusCode, string(body), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, c.transportError(0, "decode response: "+err.Error(), err)
	}
	return resp.StatusCode, nil
}

func (c *EntityClient[T]) transportError(status int, detail string, err error) *TransportError {
	return &TransportError{Resource: c.resource, StatusCode: status, Detail: detail, Err: err}
}
