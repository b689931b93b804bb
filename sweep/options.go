// SPDX-License-Identifier: MIT

package sweep

import (
	"log/slog"
	"runtime"
	"time"
)

// DefaultSolveTimeout disables the per-scenario budget.
const DefaultSolveTimeout time.Duration = 0

const (
	panicWorkersInvalid = "sweep: WithWorkers: n must be >= 1"
	panicTimeoutInvalid = "sweep: WithSolveTimeout: d must be non-negative"
	panicLoggerNil      = "sweep: WithLogger: logger must be non-nil"
)

// Option configures Run.
type Option func(*Options)

// Options is the resolved sweep configuration.
type Options struct {
	Workers      int           // 1 solves scenarios sequentially
	SolveTimeout time.Duration // per scenario; 0 disables
	Logger       *slog.Logger
}

// DefaultOptions uses one worker per available CPU, no per-scenario budget and
// a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Workers:      runtime.GOMAXPROCS(0),
		SolveTimeout: DefaultSolveTimeout,
		Logger:       slog.New(slog.DiscardHandler),
	}
}

// WithWorkers bounds the number of concurrent solves. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.Workers = n }
}

// WithSolveTimeout bounds each scenario's solve. A scenario that exceeds it is
// reported as NotSolved with reason "timeout". Panics on negative durations.
func WithSolveTimeout(d time.Duration) Option {
	if d < 0 {
		panic(panicTimeoutInvalid)
	}

	return func(o *Options) { o.SolveTimeout = d }
}

// WithLogger routes per-scenario progress to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.Logger = l }
}
