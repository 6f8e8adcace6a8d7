package registry

import (
	"context"
	"sort"
)

// Module is the interface that all puzzle modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Input is what a part solver receives: the raw lines of the puzzle input
// and the puzzle's resolved settings.
type Input struct {
	Lines    []string
	Settings map[string]int
}

// PartFunc solves one part of a puzzle and returns its answer.
type PartFunc func(ctx context.Context, in *Input) (int, error)

// Puzzle describes a registered puzzle. Parts[0] solves part 1.
type Puzzle struct {
	Name        string
	Description string
	Parts       []PartFunc
	// Settings holds the default value of every setting the puzzle accepts.
	Settings map[string]int
}

// Registry holds all the registered puzzles for a single application instance.
type Registry struct {
	puzzles map[string]*Puzzle
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		puzzles: make(map[string]*Puzzle),
	}
}

// Lookup returns the puzzle registered under name.
func (r *Registry) Lookup(name string) (*Puzzle, bool) {
	p, ok := r.puzzles[name]
	return p, ok
}

// Names returns the registered puzzle names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.puzzles))
	for name := range r.puzzles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered puzzles.
func (r *Registry) Len() int {
	return len(r.puzzles)
}
