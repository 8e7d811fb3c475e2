// Package telemetry wraps a single search run: expansion budget and
// cancellation checks, an OpenTelemetry span, otel metrics, debug logging and
// the core.Observer callback.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/statespace/core"
)

// InstrumentationName names the tracer and meter.
const InstrumentationName = "github.com/katalvlaran/statespace"

var (
	searchTotal    metric.Int64Counter
	searchDuration metric.Float64Histogram
	expandedStates metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments on first use. Safe to call repeatedly.
func initMetrics() error {
	metricsOnce.Do(func() {
		meter := otel.Meter(InstrumentationName)
		var err error

		searchTotal, err = meter.Int64Counter(
			"statespace_search_total",
			metric.WithDescription("Total number of search runs"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchDuration, err = meter.Float64Histogram(
			"statespace_search_duration_seconds",
			metric.WithDescription("Duration of search runs"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		expandedStates, err = meter.Int64Histogram(
			"statespace_expanded_states",
			metric.WithDescription("States expanded per search run"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

// Run tracks one invocation of a search algorithm.
type Run struct {
	algorithm string
	opts      core.Options
	ctx       context.Context
	span      trace.Span
	started   time.Time
	expanded  int
}

// Begin opens a run for algorithm and starts its span.
func Begin(algorithm string, opts core.Options) *Run {
	ctx, span := otel.Tracer(InstrumentationName).Start(opts.Ctx, algorithm+".Search",
		trace.WithAttributes(
			attribute.String("search.algorithm", algorithm),
			attribute.Int("search.max_expansions", opts.MaxExpansions),
			attribute.Int("search.max_depth", opts.MaxDepth),
		),
	)

	opts.Logger.Debug("search started", slog.String("algorithm", algorithm))

	return &Run{
		algorithm: algorithm,
		opts:      opts,
		ctx:       ctx,
		span:      span,
		started:   time.Now(),
	}
}

// Expand accounts for one more expanded state. It fails when the context is
// done or the expansion budget is spent; the state must not be expanded then.
func (r *Run) Expand() error {
	if err := r.ctx.Err(); err != nil {
		r.span.AddEvent("context_cancelled", trace.WithAttributes(
			attribute.Int("search.expanded", r.expanded),
		))
		return fmt.Errorf("%s: %w", r.algorithm, err)
	}
	if r.opts.MaxExpansions != core.Unlimited && r.expanded >= r.opts.MaxExpansions {
		r.span.AddEvent("limit_exceeded", trace.WithAttributes(
			attribute.Int("search.expanded", r.expanded),
		))
		return fmt.Errorf("%w: %s stopped after %d expansions", core.ErrExpansionLimit, r.algorithm, r.expanded)
	}
	r.expanded++

	return nil
}

// Expanded returns the number of states expanded so far.
func (r *Run) Expanded() int { return r.expanded }

// Options returns the run configuration.
func (r *Run) Options() core.Options { return r.opts }

// Event adds a named event to the run span.
func (r *Run) Event(name string, attrs ...attribute.KeyValue) {
	r.span.AddEvent(name, trace.WithAttributes(attrs...))
}

// End closes the span, records metrics, logs and notifies the observer.
func (r *Run) End(reachable bool, cost float64, err error) {
	elapsed := time.Since(r.started)

	r.span.SetAttributes(
		attribute.Int("search.expanded", r.expanded),
		attribute.Bool("search.reachable", reachable),
		attribute.Float64("search.cost", cost),
	)
	if err != nil {
		r.span.RecordError(err)
		r.span.SetStatus(codes.Error, err.Error())
	}
	r.span.End()

	if initMetrics() == nil {
		attrs := metric.WithAttributes(
			attribute.String("algorithm", r.algorithm),
			attribute.String("outcome", Outcome(reachable, err)),
		)
		searchTotal.Add(r.ctx, 1, attrs)
		searchDuration.Record(r.ctx, elapsed.Seconds(), attrs)
		expandedStates.Record(r.ctx, int64(r.expanded), attrs)
	}

	r.opts.Logger.Debug("search finished",
		slog.String("algorithm", r.algorithm),
		slog.Int("expanded", r.expanded),
		slog.Bool("reachable", reachable),
		slog.Float64("cost", cost),
		slog.Duration("duration", elapsed),
		slog.Any("error", err),
	)

	if r.opts.Observer != nil {
		r.opts.Observer.Observe(core.Report{
			Algorithm: r.algorithm,
			Expanded:  r.expanded,
			Reachable: reachable,
			Cost:      cost,
			Duration:  elapsed,
			Err:       err,
		})
	}
}

// Outcome classifies a run as "found", "unreachable" or "error".
func Outcome(reachable bool, err error) string {
	switch {
	case err != nil:
		return "error"
	case reachable:
		return "found"
	default:
		return "unreachable"
	}
}

// Finish stamps sol with the run's algorithm and expansion count, ends the
// run and passes sol and err through. On error the returned Solution is
// always unreachable.
func Finish[S comparable, C core.Cost](r *Run, sol core.Solution[S, C], err error) (core.Solution[S, C], error) {
	if err != nil {
		sol = core.Unreachable[S, C](r.algorithm, sol.Start, r.expanded)
	}
	sol.Algorithm = r.algorithm
	sol.Expanded = r.expanded

	switch {
	case err != nil:
	case sol.Reachable:
		r.Event("goal_reached", attribute.Int("search.path_length", len(sol.Path)))
	default:
		r.Event("frontier_exhausted")
	}
	r.End(sol.Reachable, float64(sol.Cost), err)

	return sol, err
}
