// Package metrics provides a ghrest.Transport decorator that records
// Prometheus metrics for every GitHub API request.
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/ghrest"
	"github.com/prometheus/client_golang/prometheus"
)

// statusError labels requests that failed before any HTTP status was known.
const statusError = "error"

// Transport wraps another ghrest.Transport and records request metrics.
type Transport struct {
	next ghrest.Transport

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	responseBytes   *prometheus.CounterVec
}

// New wraps next, registering its collectors on reg. Wrapping several
// transports with the same registerer shares the collectors.
//
// Example:
//
//	base, _ := rest.New()
//	transport, err := metrics.New(base, prometheus.DefaultRegisterer)
func New(next ghrest.Transport, reg prometheus.Registerer) (*Transport, error) {
	if next == nil {
		err := errors.New(errors.CodeInvalidInput, "transport cannot be nil")
		return nil, errors.WithContext(err, "field", "transport")
	}
	if reg == nil {
		err := errors.New(errors.CodeInvalidInput, "registerer cannot be nil")
		return nil, errors.WithContext(err, "field", "registerer")
	}

	requestsTotal, err := register(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ghrest_requests_total",
			Help: "Total number of GitHub API requests",
		},
		[]string{"method", "status"},
	))
	if err != nil {
		return nil, err
	}

	requestDuration, err := register(reg, prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ghrest_request_duration_seconds",
			Help:    "GitHub API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	))
	if err != nil {
		return nil, err
	}

	responseBytes, err := register(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ghrest_response_bytes_total",
			Help: "Total bytes of GitHub API response bodies",
		},
		[]string{"method"},
	))
	if err != nil {
		return nil, err
	}

	return &Transport{
		next:            next,
		requestsTotal:   requestsTotal,
		requestDuration: requestDuration,
		responseBytes:   responseBytes,
	}, nil
}

// Do implements ghrest.Transport.
func (t *Transport) Do(ctx context.Context, req *ghrest.Request) (*ghrest.Response, error) {
	start := time.Now()
	resp, err := t.next.Do(ctx, req)
	t.requestDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())

	status := statusError
	switch {
	case err == nil:
		status = strconv.Itoa(resp.StatusCode)
		t.responseBytes.WithLabelValues(req.Method).Add(float64(len(resp.Body)))
	case ghrest.StatusCode(err) != 0:
		status = strconv.Itoa(ghrest.StatusCode(err))
	}
	t.requestsTotal.WithLabelValues(req.Method, status).Inc()

	return resp, err
}

// register adds c to reg, returning the collector already registered under
// the same descriptor if there is one.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, errors.Wrap(err, errors.CodeInvalidConfig, "failed to register metrics collector")
	}
	return c, nil
}
