package day2

import (
	"fmt"
	"strconv"
	"strings"
)

// CubeSet counts cubes per colour.
type CubeSet struct {
	Red   int
	Green int
	Blue  int
}

// Game is one line of the puzzle input: an ID and the draws revealed in it.
type Game struct {
	ID    int
	Draws []CubeSet
}

// ParseGame parses a line such as "Game 3: 8 green, 6 blue; 5 blue, 4 red".
func ParseGame(line string) (*Game, error) {
	header, body, found := strings.Cut(line, ":")
	if !found {
		return nil, fmt.Errorf("missing ':' in %q", line)
	}

	fields := strings.Fields(header)
	if len(fields) != 2 || fields[0] != "Game" {
		return nil, fmt.Errorf("invalid game header %q", header)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("invalid game number %q: %w", fields[1], err)
	}

	g := &Game{ID: id}
	for _, drawText := range strings.Split(body, ";") {
		var draw CubeSet
		for _, cubes := range strings.Split(drawText, ",") {
			if err := draw.add(strings.TrimSpace(cubes)); err != nil {
				return nil, fmt.Errorf("game %d: %w", id, err)
			}
		}
		g.Draws = append(g.Draws, draw)
	}
	return g, nil
}

// add parses "<count> <colour>" into the set. A colour named twice in one
// draw keeps the larger count, as each count is a separate reveal.
func (s *CubeSet) add(cubes string) error {
	fields := strings.Fields(cubes)
	if len(fields) != 2 {
		return fmt.Errorf("invalid cube count %q", cubes)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return fmt.Errorf("invalid cube count %q", cubes)
	}

	switch fields[1] {
	case "red":
		s.Red = max(s.Red, n)
	case "green":
		s.Green = max(s.Green, n)
	case "blue":
		s.Blue = max(s.Blue, n)
	default:
		return fmt.Errorf("unknown colour %q", fields[1])
	}
	return nil
}

// Fits reports whether every colour of s is available in bag.
func (s CubeSet) Fits(bag CubeSet) bool {
	return s.Red <= bag.Red && s.Green <= bag.Green && s.Blue <= bag.Blue
}

// Power multiplies the three colour counts.
func (s CubeSet) Power() int {
	return s.Red * s.Green * s.Blue
}

// Possible reports whether every draw of the game fits in bag.
func (g *Game) Possible(bag CubeSet) bool {
	for _, d := range g.Draws {
		if !d.Fits(bag) {
			return false
		}
	}
	return true
}

// MinimumBag is the smallest bag the game could have been played with.
func (g *Game) MinimumBag() CubeSet {
	var bag CubeSet
	for _, d := range g.Draws {
		bag.Red = max(bag.Red, d.Red)
		bag.Green = max(bag.Green, d.Green)
		bag.Blue = max(bag.Blue, d.Blue)
	}
	return bag
}
