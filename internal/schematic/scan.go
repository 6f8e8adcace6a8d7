package schematic

import (
	"fmt"
	"math"
)

// Gear is a '*' cell touching at least two distinct digit runs.
type Gear struct {
	X     int
	Y     int
	Runs  []DigitRun
	Ratio int
}

// PartNumbers returns every part number in raster order. A run is reported
// once, no matter how many of its digits touch a symbol.
func (g *Grid) PartNumbers() ([]DigitRun, error) {
	visited := make([]bool, len(g.cells))

	var runs []DigitRun
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i := g.offset(x, y)
			if visited[i] || !g.IsPartNumber(x, y) {
				continue
			}

			run, err := g.ContiguousDigitRun(x, y)
			if err != nil {
				return nil, err
			}
			for j := run.Start; j < run.End; j++ {
				visited[j] = true
			}
			runs = append(runs, run)
		}
	}
	return runs, nil
}

// SumPartNumbers adds up the values of all part numbers.
func (g *Grid) SumPartNumbers() (int, error) {
	runs, err := g.PartNumbers()
	if err != nil {
		return 0, err
	}
	return SumRuns(runs)
}

// GearRatio returns the product of all distinct digit runs around the '*'
// at (x, y). ok is false when the cell is not '*' or touches fewer than two
// runs.
func (g *Grid) GearRatio(x, y int) (ratio int, ok bool, err error) {
	gear, ok, err := g.gear(x, y)
	return gear.Ratio, ok, err
}

// Gears returns every gear in raster order.
func (g *Grid) Gears() ([]Gear, error) {
	var gears []Gear
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.at(x, y) != gearCell {
				continue
			}

			gear, ok, err := g.gear(x, y)
			if err != nil {
				return nil, err
			}
			if ok {
				gears = append(gears, gear)
			}
		}
	}
	return gears, nil
}

// SumGearRatios adds up the ratios of all gears.
func (g *Grid) SumGearRatios() (int, error) {
	gears, err := g.Gears()
	if err != nil {
		return 0, err
	}
	return SumRatios(gears)
}

// SumRuns adds up the values of runs.
func SumRuns(runs []DigitRun) (int, error) {
	total := 0
	for _, run := range runs {
		var err error
		if total, err = add(total, run.Value); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// SumRatios adds up the ratios of gears.
func SumRatios(gears []Gear) (int, error) {
	total := 0
	for _, gear := range gears {
		var err error
		if total, err = add(total, gear.Ratio); err != nil {
			return 0, err
		}
	}
	return total, nil
}

func (g *Grid) gear(x, y int) (Gear, bool, error) {
	runs, err := g.adjacentRuns(x, y)
	if err != nil || len(runs) < 2 {
		return Gear{}, false, err
	}

	ratio := 1
	for _, run := range runs {
		if ratio, err = mul(ratio, run.Value); err != nil {
			return Gear{}, false, fmt.Errorf("gear at (%d, %d): %w", x, y, err)
		}
	}
	return Gear{X: x, Y: y, Runs: runs, Ratio: ratio}, true, nil
}

// adjacentRuns collects the distinct digit runs touching the '*' at (x, y).
// It returns nil for any other cell.
func (g *Grid) adjacentRuns(x, y int) ([]DigitRun, error) {
	c, err := g.At(x, y)
	if err != nil {
		return nil, err
	}
	if c != gearCell {
		return nil, nil
	}

	var runs []DigitRun
	for _, dy := range neighbourOffsets {
		for _, dx := range neighbourOffsets {
			nx, ny := x+dx, y+dy
			if !g.inBounds(nx, ny) || !isDigit(g.at(nx, ny)) {
				continue
			}
			if covered(runs, g.offset(nx, ny)) {
				continue
			}

			run, err := g.ContiguousDigitRun(nx, ny)
			if err != nil {
				return nil, err
			}
			runs = append(runs, run)
		}
	}
	return runs, nil
}

func covered(runs []DigitRun, index int) bool {
	for _, run := range runs {
		if run.Contains(index) {
			return true
		}
	}
	return false
}

// add and mul operate on the non-negative values digit runs produce.
func add(a, b int) (int, error) {
	if a > math.MaxInt-b {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return a + b, nil
}

func mul(a, b int) (int, error) {
	if b != 0 && a > math.MaxInt/b {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return a * b, nil
}
