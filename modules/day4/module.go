// Package day4 solves the scratchcards puzzle.
package day4

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/aoc2023/internal/ctxlog"
	"github.com/vk/aoc2023/internal/registry"
)

// Name is the puzzle name used on the command line and in run files.
const Name = "day4"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{
		Name:        Name,
		Description: "Scratchcards: total points of the pile",
		Parts:       []registry.PartFunc{TotalScore},
	})
}

// TotalScore adds up the score of every card. Blank lines are skipped.
func TotalScore(ctx context.Context, in *registry.Input) (int, error) {
	logger := ctxlog.FromContext(ctx)

	total, cards := 0, 0
	for i, line := range in.Lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		card, err := ParseScratchcard(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += card.Score()
		cards++
	}

	logger.Debug("Scratchcards scored.", "cards", cards, "total", total)
	return total, nil
}
