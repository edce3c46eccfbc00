package siatec

import (
	"context"
	"io"
	"log/slog"
	"runtime"
)

// DefaultWorkers runs discovery on the calling goroutine's schedule with no
// fan-out. Use WithWorkers to shard the work.
const DefaultWorkers = 1

// Option configures an Engine. Use with New(opts...).
type Option func(*Options)

// Options holds the engine configuration.
type Options struct {
	// Ctx lets a caller abandon a long run; it is checked before each
	// shard and each translator task. Defaults to context.Background().
	Ctx context.Context

	// Workers bounds the number of goroutines used for the vector table
	// shards and the translator tasks. 1 means sequential.
	Workers int

	// Logger receives Debug-level run summaries. Defaults to a discard logger.
	Logger *slog.Logger
}

// DefaultOptions returns Options with:
//   - Background context
//   - DefaultWorkers workers
//   - a Logger that discards everything
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: DefaultWorkers,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets the context checked between work units.
// A nil ctx leaves the current one in place.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the worker bound. n <= 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.Workers = n
	}
}

// WithLogger routes run summaries to l. A nil l leaves the current logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
