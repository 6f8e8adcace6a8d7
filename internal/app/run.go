package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vk/aoc2023/internal/config"
	"github.com/vk/aoc2023/internal/ctxlog"
	"github.com/vk/aoc2023/internal/fsutil"
	"github.com/vk/aoc2023/internal/registry"
	"github.com/vk/aoc2023/internal/report"
)

// Run executes the configured puzzles and writes their answers. Nothing is
// written unless every requested part succeeds.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.List {
		return a.listPuzzles()
	}

	model, err := a.plan(ctx)
	if err != nil {
		return err
	}
	a.logger.Debug("Run plan ready.", "runs", len(model.Runs))

	var results []report.Result
	for _, run := range model.Runs {
		res, err := a.solve(ctx, run)
		if err != nil {
			return err
		}
		results = append(results, res...)
	}

	if err := report.Write(a.outW, a.config.OutputFormat, results); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// plan builds the list of runs from the run configuration, or from the
// puzzle names and input path when no run configuration is given.
func (a *App) plan(ctx context.Context) (*config.Model, error) {
	var model *config.Model
	if a.config.ConfigPath != "" {
		loaded, err := a.loader.Load(ctx, a.config.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load run configuration: %w", err)
		}
		model, err = loaded.Select(a.config.Puzzles...)
		if err != nil {
			return nil, err
		}
	} else {
		model = &config.Model{}
		for _, name := range a.config.Puzzles {
			model.Runs = append(model.Runs, &config.Run{Puzzle: name, Input: a.config.InputPath})
		}
	}

	if len(model.Runs) == 0 {
		return nil, fmt.Errorf("no puzzles to run")
	}
	if a.config.Part > 0 {
		for _, run := range model.Runs {
			run.Parts = []int{a.config.Part}
		}
	}
	return model, nil
}

// solve reads the run's input once and solves each requested part.
func (a *App) solve(ctx context.Context, run *config.Run) ([]report.Result, error) {
	ctx = ctxlog.With(ctx, "puzzle", run.Puzzle)
	logger := ctxlog.FromContext(ctx)

	p, ok := a.registry.Lookup(run.Puzzle)
	if !ok {
		return nil, fmt.Errorf("unknown puzzle %q (available: %s)", run.Puzzle, strings.Join(a.registry.Names(), ", "))
	}

	settings, err := p.ResolveSettings(run.Settings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", run, err)
	}

	parts := run.Parts
	if len(parts) == 0 {
		for n := 1; n <= len(p.Parts); n++ {
			parts = append(parts, n)
		}
	}

	lines, err := fsutil.ReadLines(run.Input)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", run, err)
	}
	logger.Info("Input loaded.", "path", run.Input, "lines", len(lines))

	in := &registry.Input{Lines: lines, Settings: settings}
	results := make([]report.Result, 0, len(parts))
	for _, n := range parts {
		fn, err := p.Part(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", run, err)
		}

		start := time.Now()
		answer, err := fn(ctxlog.With(ctx, "part", n), in)
		if err != nil {
			return nil, fmt.Errorf("%s part %d: %w", run.Puzzle, n, err)
		}
		logger.Info("Part solved.", "part", n, "answer", answer, "elapsed", time.Since(start))

		results = append(results, report.Result{
			Puzzle: run.Puzzle,
			Part:   n,
			Answer: answer,
			Input:  run.Input,
		})
	}
	return results, nil
}
