package schematic

import "errors"

var (
	// ErrMalformedInput is returned by Build when the lines do not form a
	// non-empty rectangle.
	ErrMalformedInput = errors.New("malformed schematic")
	// ErrOutOfBounds is returned when a coordinate falls outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrParse is returned when a digit run cannot be read as an integer.
	ErrParse = errors.New("digit run is not an integer")
	// ErrOverflow is returned when a gear ratio or a total does not fit in an
	// int.
	ErrOverflow = errors.New("integer overflow")
)
