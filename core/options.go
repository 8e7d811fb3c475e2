package core

import (
	"context"
	"log/slog"
	"time"
)

// Unlimited disables MaxExpansions or MaxDepth.
const Unlimited = -1

// Report summarises one finished search run. It is handed to an Observer.
// Cost is converted to float64 so observers need not be generic.
type Report struct {
	Algorithm string
	Expanded  int
	Reachable bool
	Cost      float64
	Duration  time.Duration
	Err       error
}

// Observer receives a Report after every search run.
type Observer interface {
	Observe(r Report)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(r Report)

// Observe calls f(r).
func (f ObserverFunc) Observe(r Report) { f(r) }

// Options configures a single search run.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxExpansions caps the number of expanded states. Unlimited by default.
	MaxExpansions int

	// MaxDepth caps the number of transitions on a path explored by the
	// backtracking, depth-first and dynamic-programming searches.
	// Deeper branches are pruned, not reported as errors. Unlimited by default.
	MaxDepth int

	// Logger receives debug records for run start and finish.
	Logger *slog.Logger

	// Observer, if non-nil, is notified once per run.
	Observer Observer
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with a background context, no limits,
// slog.Default() as logger and no observer.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: Unlimited,
		MaxDepth:      Unlimited,
		Logger:        slog.Default(),
		Observer:      nil,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext sets the context checked between expansions.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions limits the number of states a search may expand.
// Panics with ErrBadLimit if n is negative.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadLimit.Error())
		}
		o.MaxExpansions = n
	}
}

// WithMaxDepth limits the length of explored paths. A depth of 0 only looks
// at the start state. Panics with ErrBadLimit if d is negative.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadLimit.Error())
		}
		o.MaxDepth = d
	}
}

// WithLogger sets the logger. A nil logger restores slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = slog.Default()
		}
		o.Logger = l
	}
}

// WithObserver installs an Observer notified after each run.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// DepthExceeded reports whether a path of the given length lies beyond MaxDepth.
func (o Options) DepthExceeded(depth int) bool {
	return o.MaxDepth != Unlimited && depth > o.MaxDepth
}
