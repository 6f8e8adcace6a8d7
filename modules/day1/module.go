// Package day1 solves the calibration document puzzle: every line hides a
// two-digit number made of its first and last digit.
package day1

import (
	"context"
	"strings"

	"github.com/vk/aoc2023/internal/ctxlog"
	"github.com/vk/aoc2023/internal/registry"
)

// Name is the puzzle name used on the command line and in run files.
const Name = "day1"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{
		Name:        Name,
		Description: "Trebuchet?!: calibration values from digits, then from digits and words",
		Parts:       []registry.PartFunc{SumDigits, SumDigitsAndWords},
	})
}

// SumDigits adds up the calibration values using digit characters only.
func SumDigits(ctx context.Context, in *registry.Input) (int, error) {
	return sumCalibration(ctx, in.Lines, false), nil
}

// SumDigitsAndWords adds up the calibration values where spelled-out digits
// ("one" to "nine") count as well.
func SumDigitsAndWords(ctx context.Context, in *registry.Input) (int, error) {
	return sumCalibration(ctx, in.Lines, true), nil
}

func sumCalibration(ctx context.Context, lines []string, words bool) int {
	logger := ctxlog.FromContext(ctx)

	total := 0
	for i, line := range lines {
		v, ok := CalibrationValue(line, words)
		if !ok && strings.TrimSpace(line) != "" {
			logger.Debug("Line has no digit, counting it as zero.", "line", i+1)
		}
		total += v
	}
	return total
}
