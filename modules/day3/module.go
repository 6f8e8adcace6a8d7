// Package day3 solves the engine schematic puzzle on top of the schematic
// grid engine.
package day3

import (
	"context"
	"fmt"

	"github.com/vk/aoc2023/internal/ctxlog"
	"github.com/vk/aoc2023/internal/registry"
	"github.com/vk/aoc2023/internal/schematic"
)

// Name is the puzzle name used on the command line and in run files.
const Name = "day3"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{
		Name:        Name,
		Description: "Gear Ratios: sum of part numbers, sum of gear ratios",
		Parts:       []registry.PartFunc{SumPartNumbers, SumGearRatios},
	})
}

// SumPartNumbers adds up every number adjacent to a symbol.
func SumPartNumbers(ctx context.Context, in *registry.Input) (int, error) {
	g, err := build(ctx, in)
	if err != nil {
		return 0, err
	}

	runs, err := g.PartNumbers()
	if err != nil {
		return 0, fmt.Errorf("scan part numbers: %w", err)
	}

	total, err := schematic.SumRuns(runs)
	if err != nil {
		return 0, fmt.Errorf("sum part numbers: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Part numbers found.", "count", len(runs), "sum", total)
	return total, nil
}

// SumGearRatios adds up the ratio of every '*' touching two or more numbers.
func SumGearRatios(ctx context.Context, in *registry.Input) (int, error) {
	g, err := build(ctx, in)
	if err != nil {
		return 0, err
	}

	gears, err := g.Gears()
	if err != nil {
		return 0, fmt.Errorf("scan gears: %w", err)
	}

	total, err := schematic.SumRatios(gears)
	if err != nil {
		return 0, fmt.Errorf("sum gear ratios: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Gears found.", "count", len(gears), "sum", total)
	return total, nil
}

func build(ctx context.Context, in *registry.Input) (*schematic.Grid, error) {
	g, err := schematic.Build(in.Lines)
	if err != nil {
		return nil, fmt.Errorf("build schematic: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Schematic built.", "width", g.Width(), "height", g.Height())
	return g, nil
}
