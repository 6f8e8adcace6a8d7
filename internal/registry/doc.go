// Package registry provides the central "glue" between puzzle names used on
// the command line or in run files (e.g., "day3") and the compiled Go
// functions that solve them.
//
// Puzzle modules register themselves during application startup. The
// registry is then validated so that a puzzle without any solvable part is
// caught before any input is read.
package registry
