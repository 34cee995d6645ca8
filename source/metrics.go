package source

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation label values.
const (
	opCount = "count"
	opRange = "range"
)

// Metrics holds the collectors shared by every Instrumented source.
// All series are labelled by source name and operation ("count" or "range").
type Metrics struct {
	loads   *prometheus.CounterVec
	items   *prometheus.CounterVec
	errors  *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. Collectors
// already registered by an earlier call are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	labels := []string{"source", "op"}
	m := &Metrics{
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvpage", Subsystem: "source", Name: "loads_total",
			Help: "Number of source calls.",
		}, labels),
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvpage", Subsystem: "source", Name: "items_total",
			Help: "Number of items returned by range loads.",
		}, labels),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvpage", Subsystem: "source", Name: "load_errors_total",
			Help: "Number of failed source calls.",
		}, labels),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvpage", Subsystem: "source", Name: "load_seconds",
			Help:    "Latency of source calls.",
			Buckets: prometheus.DefBuckets,
		}, labels),
	}

	var err error
	if m.loads, err = register(reg, m.loads); err != nil {
		return nil, err
	}
	if m.items, err = register(reg, m.items); err != nil {
		return nil, err
	}
	if m.errors, err = register(reg, m.errors); err != nil {
		return nil, err
	}
	if m.latency, err = register(reg, m.latency); err != nil {
		return nil, err
	}

	return m, nil
}

// register registers c, returning the existing collector when an identical
// one is already registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}

	return c, nil
}

// Instrumented wraps a PositionalSource and records Metrics for every call.
type Instrumented[T any] struct {
	name    string
	src     PositionalSource[T]
	metrics *Metrics
}

// Instrument wraps src under the given source label.
func Instrument[T any](name string, src PositionalSource[T], m *Metrics) (*Instrumented[T], error) {
	if src == nil || m == nil {
		return nil, ErrNilSource
	}

	return &Instrumented[T]{name: name, src: src, metrics: m}, nil
}

// Count forwards to the wrapped source.
func (i *Instrumented[T]) Count(ctx context.Context) (int, error) {
	begin := time.Now()
	n, err := i.src.Count(ctx)
	i.observe(opCount, begin, err)

	return n, err
}

// LoadRange forwards to the wrapped source and counts the returned items.
func (i *Instrumented[T]) LoadRange(ctx context.Context, start, count int) ([]T, error) {
	begin := time.Now()
	items, err := i.src.LoadRange(ctx, start, count)
	i.observe(opRange, begin, err)
	if err == nil {
		i.metrics.items.WithLabelValues(i.name, opRange).Add(float64(len(items)))
	}

	return items, err
}

func (i *Instrumented[T]) observe(op string, begin time.Time, err error) {
	i.metrics.loads.WithLabelValues(i.name, op).Inc()
	i.metrics.latency.WithLabelValues(i.name, op).Observe(time.Since(begin).Seconds())
	if err != nil {
		i.metrics.errors.WithLabelValues(i.name, op).Inc()
	}
}
