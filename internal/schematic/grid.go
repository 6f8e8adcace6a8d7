package schematic

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

const (
	blankCell = '.'
	gearCell  = '*'
)

// neighbourOffsets spans the Moore neighbourhood of a cell, the cell itself
// included, when applied on both axes.
var neighbourOffsets = [3]int{-1, 0, 1}

// Grid is a rectangular, row-major character buffer. It is never modified
// after Build returns, so concurrent readers need no locking.
type Grid struct {
	width  int
	height int
	cells  []rune
}

// DigitRun is a maximal horizontal sequence of digits within one row.
// Start and End are row-major indexes; End is exclusive.
type DigitRun struct {
	Value int
	Start int
	End   int
}

// Contains reports whether the row-major index lies inside the run.
func (r DigitRun) Contains(index int) bool {
	return index >= r.Start && index < r.End
}

// Build creates a grid from equal-length text lines. Each rune is one cell.
func Build(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedInput)
	}

	width := utf8.RuneCountInString(lines[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: row 0 is empty", ErrMalformedInput)
	}

	cells := make([]rune, 0, width*len(lines))
	for y, line := range lines {
		row := []rune(line)
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformedInput, y, len(row), width)
		}
		cells = append(cells, row...)
	}

	return &Grid{
		width:  width,
		height: len(lines),
		cells:  cells,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// At returns the character at (x, y).
func (g *Grid) At(x, y int) (rune, error) {
	if !g.inBounds(x, y) {
		return 0, g.outOfBounds(x, y)
	}
	return g.at(x, y), nil
}

// Row returns row y as a string.
func (g *Grid) Row(y int) (string, error) {
	if !g.inBounds(0, y) {
		return "", g.outOfBounds(0, y)
	}
	start := g.offset(0, y)
	return string(g.cells[start : start+g.width]), nil
}

// IsPartNumber reports whether the digit at (x, y) touches a symbol. It is
// false for cells that are not digits and for coordinates outside the grid.
func (g *Grid) IsPartNumber(x, y int) bool {
	if !g.inBounds(x, y) || !isDigit(g.at(x, y)) {
		return false
	}

	for _, dy := range neighbourOffsets {
		for _, dx := range neighbourOffsets {
			nx, ny := x+dx, y+dy
			if g.inBounds(nx, ny) && isSymbol(g.at(nx, ny)) {
				return true
			}
		}
	}
	return false
}

// ContiguousDigitRun expands the digit at (x, y) to the whole run of digits
// around it on the same row. Every coordinate inside one run yields the same
// result.
func (g *Grid) ContiguousDigitRun(x, y int) (DigitRun, error) {
	c, err := g.At(x, y)
	if err != nil {
		return DigitRun{}, err
	}
	if !isDigit(c) {
		return DigitRun{}, fmt.Errorf("%w: %q at (%d, %d) is not a digit", ErrParse, c, x, y)
	}

	left, right := x, x+1
	for left > 0 && isDigit(g.at(left-1, y)) {
		left--
	}
	for right < g.width && isDigit(g.at(right, y)) {
		right++
	}

	start, end := g.offset(left, y), g.offset(right, y)
	text := string(g.cells[start:end])
	value, err := strconv.Atoi(text)
	if err != nil {
		return DigitRun{}, fmt.Errorf("%w: %q at row %d: %v", ErrParse, text, y, err)
	}

	return DigitRun{Value: value, Start: start, End: end}, nil
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid) offset(x, y int) int {
	return y*g.width + x
}

// at is the unchecked form of At.
func (g *Grid) at(x, y int) rune {
	return g.cells[g.offset(x, y)]
}

func (g *Grid) outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d, %d) in %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
}

// isDigit only accepts ASCII digits; other Unicode digits are symbols.
func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isSymbol(c rune) bool {
	return c != blankCell && !isDigit(c)
}
