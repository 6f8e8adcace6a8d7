package day4

import (
	"fmt"
	"strconv"
	"strings"
)

// Scratchcard is one card: the winning numbers and the numbers you have.
type Scratchcard struct {
	Name    string
	Winners []int
	Numbers []int
}

// ParseScratchcard parses a line such as
// "Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53".
func ParseScratchcard(line string) (*Scratchcard, error) {
	name, body, found := strings.Cut(line, ":")
	if !found {
		return nil, fmt.Errorf("missing ':' in %q", line)
	}
	winnerText, numberText, found := strings.Cut(body, "|")
	if !found {
		return nil, fmt.Errorf("%s: missing '|'", name)
	}

	winners, err := parseNumbers(winnerText)
	if err != nil {
		return nil, fmt.Errorf("%s: winning numbers: %w", name, err)
	}
	numbers, err := parseNumbers(numberText)
	if err != nil {
		return nil, fmt.Errorf("%s: numbers: %w", name, err)
	}

	return &Scratchcard{
		Name:    strings.TrimSpace(name),
		Winners: winners,
		Numbers: numbers,
	}, nil
}

func parseNumbers(s string) ([]int, error) {
	fields := strings.Fields(s)
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// Matches counts the numbers you have that are winning numbers.
func (c *Scratchcard) Matches() int {
	winners := make(map[int]struct{}, len(c.Winners))
	for _, w := range c.Winners {
		winners[w] = struct{}{}
	}

	hits := 0
	for _, n := range c.Numbers {
		if _, ok := winners[n]; ok {
			hits++
		}
	}
	return hits
}

// Score is one point for the first match, doubled for each further match.
func (c *Scratchcard) Score() int {
	hits := c.Matches()
	if hits == 0 {
		return 0
	}
	return 1 << (hits - 1)
}
