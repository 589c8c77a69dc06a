// Package runner executes compiled plans sequentially and classifies the
// outcome of every example.
package runner

import (
	"context"
	"errors"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/specialistvlad/gospec/internal/ctxlog"
	"github.com/specialistvlad/gospec/internal/example"
)

// Runner executes plans.
type Runner struct {
	metrics  *Metrics
	observer func(Result)
	now      func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithRegisterer records metrics in reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(r *Runner) {
		r.metrics = NewMetrics(reg)
	}
}

// WithObserver calls fn with every result as soon as it is known.
func WithObserver(fn func(Result)) Option {
	return func(r *Runner) {
		r.observer = fn
	}
}

// New creates a runner.
func New(opts ...Option) *Runner {
	r := &Runner{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every example of plan in order.
func (r *Runner) Run(ctx context.Context, spec string, plan *example.Plan) *Report {
	report := &Report{RunID: uuid.New(), Spec: spec}
	logger := ctxlog.FromContext(ctx).With("run_id", report.RunID.String(), "spec", spec)
	logger.Debug("Running plan.", "examples", plan.Len())
	ctx = ctxlog.WithLogger(ctx, logger)

	start := r.now()
	for _, e := range plan.Examples() {
		res := r.RunExample(ctx, e)
		report.Results = append(report.Results, res)
		logger.Debug("Example finished.", "example", e.Path(), "status", res.Status.String(), "duration", res.Duration)
	}
	report.Duration = r.now().Sub(start)

	logger.Info("Plan finished.", "passed", report.Count(Passed), "failed", len(report.Results)-report.Count(Passed)-report.Count(Ignored), "ignored", report.Count(Ignored))
	return report
}

// RunExample executes one example and classifies its outcome.
//
// A timed-out example is abandoned, not stopped: its context is cancelled,
// but its body and its remaining hooks may still be running when the next
// example starts. Examples sharing fixtures with a timed-out one should not
// rely on them afterwards.
func (r *Runner) RunExample(ctx context.Context, e *example.Example) Result {
	res := Result{Path: e.Path(), Status: Pending}
	if e.ShouldBeIgnored() {
		res.Status = Ignored
		r.finish(res)
		return res
	}

	res.Status = Running
	logger := ctxlog.FromContext(ctx).With("example", strings.Join(res.Path, " > "))
	ctx = ctxlog.WithLogger(ctx, logger)
	start := r.now()
	res.Status, res.Err = r.execute(ctx, e)
	res.Duration = r.now().Sub(start)
	r.finish(res)
	return res
}

func (r *Runner) finish(res Result) {
	r.metrics.record(res.Status, res.Duration)
	if r.observer != nil {
		r.observer(res)
	}
}

func (r *Runner) execute(ctx context.Context, e *example.Example) (Status, error) {
	if !e.ShouldFailOnTimeout() {
		return classify(e, protect(ctx, e))
	}

	ctx, cancel := context.WithTimeout(ctx, e.Timeout())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- protect(ctx, e)
	}()

	select {
	case err := <-done:
		return classify(e, err)
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return TimedOut, &TimeoutError{Timeout: e.Timeout()}
		}
		return Errored, ctx.Err()
	}
}

// protect runs the example and turns a panic into a *PanicError.
func protect(ctx context.Context, e *example.Example) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Value: v, Stack: debug.Stack()}
		}
	}()
	return e.Run(ctx)
}

func classify(e *example.Example, err error) (Status, error) {
	var panicErr *PanicError
	if errors.As(err, &panicErr) {
		return Errored, err
	}

	expected := e.ExpectedFailure()
	switch {
	case expected == nil && err == nil:
		return Passed, nil
	case expected == nil:
		return Failed, err
	case err == nil:
		return Failed, &MissingFailureError{Expected: expected}
	case errors.Is(err, expected):
		return Passed, nil
	default:
		return Failed, &UnexpectedFailureError{Expected: expected, Actual: err}
	}
}
