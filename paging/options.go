// SPDX-License-Identifier: MIT
// File: options.go
// Role: Functional options for ContiguousList and their documented defaults.
// Policy:
//   - Defaults live in constants (single source of truth).
//   - WithX constructors panic on nonsensical values (programmer error).

package paging

import (
	"context"

	"github.com/sirupsen/logrus"
)

// DefaultPageSize is the number of items requested per load.
const DefaultPageSize = 20

// DefaultPrefetchDistance of 0 means "use the page size".
const DefaultPrefetchDistance = 0

const (
	panicPageSizeInvalid         = "paging: WithPageSize: size must be > 0"
	panicPrefetchDistanceInvalid = "paging: WithPrefetchDistance: distance must be >= 0"
	panicExecutorNil             = "paging: WithExecutor: executor must not be nil"
	panicContextNil              = "paging: WithContext: ctx must not be nil"
	panicLoggerNil               = "paging: WithLogger: logger must not be nil"
)

// Executor runs a load job. The default starts a goroutine per job.
type Executor func(job func())

// Option configures a ContiguousList.
type Option[T any] func(*config[T])

type config[T any] struct {
	loader           Loader[T]
	pageSize         int
	prefetchDistance int
	executor         Executor
	ctx              context.Context
	logger           logrus.FieldLogger
}

func defaultConfig[T any]() config[T] {
	return config[T]{
		pageSize:         DefaultPageSize,
		prefetchDistance: DefaultPrefetchDistance,
		executor:         func(job func()) { go job() },
		ctx:              context.Background(),
		logger:           logrus.StandardLogger(),
	}
}

func gatherOptions[T any](opts []Option[T]) config[T] {
	cfg := defaultConfig[T]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.prefetchDistance == 0 {
		cfg.prefetchDistance = cfg.pageSize
	}

	return cfg
}

// WithLoader sets the source of additional pages. Without a loader LoadAround
// is a no-op and the list only grows through Prepend/Append.
func WithLoader[T any](loader Loader[T]) Option[T] {
	return func(c *config[T]) { c.loader = loader }
}

// WithPageSize sets how many items each load requests.
func WithPageSize[T any](size int) Option[T] {
	if size <= 0 {
		panic(panicPageSizeInvalid)
	}

	return func(c *config[T]) { c.pageSize = size }
}

// WithPrefetchDistance sets how close to an edge of the loaded window an
// accessed index must be to trigger a load. Zero means the page size.
func WithPrefetchDistance[T any](distance int) Option[T] {
	if distance < 0 {
		panic(panicPrefetchDistanceInvalid)
	}

	return func(c *config[T]) { c.prefetchDistance = distance }
}

// WithExecutor sets how load jobs are run. Tests pass a synchronous executor.
func WithExecutor[T any](exec Executor) Option[T] {
	if exec == nil {
		panic(panicExecutorNil)
	}

	return func(c *config[T]) { c.executor = exec }
}

// WithContext sets the context passed to the Loader. Cancelling it stops
// further loads.
func WithContext[T any](ctx context.Context) Option[T] {
	if ctx == nil {
		panic(panicContextNil)
	}

	return func(c *config[T]) { c.ctx = ctx }
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger[T any](logger logrus.FieldLogger) Option[T] {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(c *config[T]) { c.logger = logger }
}
