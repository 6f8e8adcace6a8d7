// Package day2 solves the cube conundrum: games of cubes drawn from a bag.
package day2

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/aoc2023/internal/ctxlog"
	"github.com/vk/aoc2023/internal/registry"
)

// Name is the puzzle name used on the command line and in run files.
const Name = "day2"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry. The bag contents are
// settings so that run files can ask about other bags.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{
		Name:        Name,
		Description: "Cube Conundrum: sum of possible game IDs, sum of minimum bag powers",
		Parts:       []registry.PartFunc{SumPossibleGames, SumPowers},
		Settings: map[string]int{
			"red":   12,
			"green": 13,
			"blue":  14,
		},
	})
}

// SumPossibleGames adds up the IDs of the games that fit the configured bag.
func SumPossibleGames(ctx context.Context, in *registry.Input) (int, error) {
	games, err := parseGames(in.Lines)
	if err != nil {
		return 0, err
	}

	bag := CubeSet{
		Red:   in.Settings["red"],
		Green: in.Settings["green"],
		Blue:  in.Settings["blue"],
	}
	ctxlog.FromContext(ctx).Debug("Checking games against bag.", "games", len(games), "bag", fmt.Sprintf("%+v", bag))

	total := 0
	for _, g := range games {
		if g.Possible(bag) {
			total += g.ID
		}
	}
	return total, nil
}

// SumPowers adds up the power of each game's minimum bag.
func SumPowers(ctx context.Context, in *registry.Input) (int, error) {
	games, err := parseGames(in.Lines)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, g := range games {
		total += g.MinimumBag().Power()
	}
	return total, nil
}

// parseGames skips blank lines; any other unparsable line fails the run.
func parseGames(lines []string) ([]*Game, error) {
	games := make([]*Game, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		g, err := ParseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		games = append(games, g)
	}
	return games, nil
}
