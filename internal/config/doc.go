// Package config defines the format-agnostic model of a run: which puzzles
// to solve, which input file each one reads, and which parts and settings
// apply. Concrete loaders, such as the HCL one, live in separate packages.
package config
