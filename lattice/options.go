// SPDX-License-Identifier: MIT

// Package lattice: functional configuration for Build.
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions resolves them into the internal options struct.

package lattice

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
)

// Method selects the concept generation strategy.
type Method int

const (
	// MethodCanonical enumerates the complete lattice: top, bottom, every
	// object and attribute concept, closed under pairwise meet and join.
	MethodCanonical Method = iota

	// MethodObjects materializes only top, bottom and the object concepts.
	MethodObjects

	// MethodAttributes materializes only top, bottom and the attribute concepts.
	MethodAttributes
)

// String returns the lower-case method name used in logs and metric labels.
func (m Method) String() string {
	switch m {
	case MethodCanonical:
		return "canonical"
	case MethodObjects:
		return "objects"
	case MethodAttributes:
		return "attributes"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMethod enumerates the complete lattice.
	DefaultMethod = MethodCanonical

	// DefaultMaxConcepts of 0 disables the enumeration bound.
	DefaultMaxConcepts = 0
)

// DefaultWorkers bounds the singleton-closure pool; GOMAXPROCS at call time.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// ---------- Internal panic messages ----------

const (
	panicNilLogger      = "lattice: WithLogger: logger must be non-nil"
	panicNilContext     = "lattice: WithContext: ctx must be non-nil"
	panicWorkers        = "lattice: WithWorkers: n must be ≥ 1"
	panicMaxConcepts    = "lattice: WithMaxConcepts: n must be ≥ 0"
	panicUnknownMethod  = "lattice: WithMethod: unknown method"
	panicNilMetricsSink = "lattice: WithMetrics: metrics must be non-nil"
)

// Option configures Build.
type Option func(*options)

type options struct {
	ctx         context.Context
	logger      *slog.Logger
	workers     int
	maxConcepts int
	method      Method
	metrics     *Metrics
}

// WithContext makes Build observe ctx for cancellation.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicNilContext)
	}

	return func(o *options) { o.ctx = ctx }
}

// WithLogger routes build diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithWorkers bounds the number of goroutines computing singleton closures.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkers)
	}

	return func(o *options) { o.workers = n }
}

// WithMaxConcepts aborts Build with ErrTooManyConcepts once more than n
// distinct concepts appear. n == 0 disables the bound.
func WithMaxConcepts(n int) Option {
	if n < 0 {
		panic(panicMaxConcepts)
	}

	return func(o *options) { o.maxConcepts = n }
}

// WithMethod selects the generation strategy.
func WithMethod(m Method) Option {
	if m < MethodCanonical || m > MethodAttributes {
		panic(panicUnknownMethod)
	}

	return func(o *options) { o.method = m }
}

// WithMetrics records build statistics into m.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic(panicNilMetricsSink)
	}

	return func(o *options) { o.metrics = m }
}

func gatherOptions(opts ...Option) options {
	o := options{
		ctx:         context.Background(),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers:     DefaultWorkers(),
		maxConcepts: DefaultMaxConcepts,
		method:      DefaultMethod,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
