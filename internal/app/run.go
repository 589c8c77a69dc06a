package app

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/gospec/internal/compiler"
	"github.com/specialistvlad/gospec/internal/config"
	"github.com/specialistvlad/gospec/internal/ctxlog"
	"github.com/specialistvlad/gospec/internal/render"
	"github.com/specialistvlad/gospec/internal/report"
	"github.com/specialistvlad/gospec/internal/runner"
	"github.com/specialistvlad/gospec/internal/script"
	"github.com/specialistvlad/gospec/internal/specerr"
)

// FailedExamplesError is returned by Run when at least one example did not
// pass.
type FailedExamplesError struct {
	Failed int
	Total  int
}

func (e *FailedExamplesError) Error() string {
	return fmt.Sprintf("%d of %d examples failed", e.Failed, e.Total)
}

// Run loads the spec files, compiles every spec concurrently and then either
// prints the plans (dry run) or runs them and prints the report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.ctx = ctx
	a.logger.Debug("App.Run method started.")

	a.startMetricsServer()
	defer func() { _ = a.closeMetricsServer() }()

	model, err := a.load(ctx)
	if err != nil {
		return err
	}
	if len(model.Specs) == 0 {
		a.logger.Warn("No specs found, nothing to run.", "path", a.config.SpecPath)
		return nil
	}

	units, err := script.Units(model, a.handlers)
	if err != nil {
		return &specerr.SpecInitializationFailedError{Spec: a.config.SpecPath, Cause: err}
	}

	plans, err := compiler.CompileAll(ctx, units, compiler.WithSeed(a.config.Seed))
	if err != nil {
		return err
	}
	a.logger.Info("Specs compiled.", "specs", len(plans), "seed", a.config.Seed)

	if a.config.DryRun {
		for _, plan := range plans {
			fmt.Fprintln(a.outW, render.Plan(plan))
		}
		return nil
	}

	r := runner.New(runner.WithRegisterer(a.metrics))
	reports := make([]*runner.Report, 0, len(plans))
	failed, total := 0, 0
	for i, plan := range plans {
		rep := r.Run(ctx, units[i].Name, plan)
		reports = append(reports, rep)
		for _, res := range rep.Results {
			total++
			if !res.Status.Successful() {
				failed++
			}
		}
	}

	if a.config.Report == ReportTable {
		report.Write(a.outW, reports...)
	}

	a.logger.Debug("App.Run method finished.")
	if failed > 0 {
		return &FailedExamplesError{Failed: failed, Total: total}
	}
	return nil
}

// load reads the spec path with every loader and merges the results.
func (a *App) load(ctx context.Context) (*config.Model, error) {
	a.logger.Debug("Loading spec files...", "spec_path", a.config.SpecPath)
	if _, err := os.Stat(a.config.SpecPath); err != nil {
		return nil, fmt.Errorf("failed to access spec path: %w", err)
	}
	model := &config.Model{}
	for _, l := range a.loaders {
		m, err := l.Load(ctx, a.config.SpecPath)
		if err != nil {
			return nil, &specerr.SpecInitializationFailedError{Spec: a.config.SpecPath, Cause: err}
		}
		model.Merge(m)
	}
	a.logger.Info("Spec files loaded.", "specs", len(model.Specs))
	return model, nil
}
