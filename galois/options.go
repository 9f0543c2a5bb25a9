// SPDX-License-Identifier: MIT

package galois

import (
	"io"
	"log/slog"
)

// Option configures New.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

const panicNilLogger = "galois: WithLogger: logger must be non-nil"

// WithLogger routes diagnostics to l. Panics on nil (programmer error).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

func gatherOptions(opts ...Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
