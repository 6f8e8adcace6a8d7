// Package schematic implements the engine schematic grid: a rectangular,
// read-only buffer of characters with the scans needed to find part numbers
// and gear ratios.
//
// A part number is a maximal horizontal run of digits with at least one
// symbol among its eight neighbours, where a symbol is anything that is
// neither a digit nor '.'. A gear is a '*' cell touching two or more distinct
// digit runs; its ratio is the product of all of them.
//
// Coordinates are (x, y) with x the column and y the row. Cells are stored in
// row-major order, so the cell at (x, y) lives at index y*width + x. Digit
// runs report their extent in that same index space.
package schematic
