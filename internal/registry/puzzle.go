package registry

import (
	"fmt"
	"log/slog"
)

// RegisterPuzzle adds a puzzle to the registry. Registering an empty or
// duplicate name is a programmer error and panics.
func (r *Registry) RegisterPuzzle(p *Puzzle) {
	if p == nil || p.Name == "" {
		panic("puzzle must have a name")
	}
	if _, exists := r.puzzles[p.Name]; exists {
		panic(fmt.Sprintf("puzzle with name '%s' already registered", p.Name))
	}
	slog.Debug("Registering puzzle.", "name", p.Name, "parts", len(p.Parts))
	r.puzzles[p.Name] = p
}

// Part returns the solver for the 1-based part number.
func (p *Puzzle) Part(n int) (PartFunc, error) {
	if n < 1 || n > len(p.Parts) {
		return nil, fmt.Errorf("puzzle '%s' has no part %d (parts: 1-%d)", p.Name, n, len(p.Parts))
	}
	return p.Parts[n-1], nil
}

// ResolveSettings merges overrides into the puzzle's defaults. Keys the
// puzzle does not declare are rejected.
func (p *Puzzle) ResolveSettings(overrides map[string]int) (map[string]int, error) {
	resolved := make(map[string]int, len(p.Settings))
	for k, v := range p.Settings {
		resolved[k] = v
	}
	for k, v := range overrides {
		if _, ok := p.Settings[k]; !ok {
			return nil, fmt.Errorf("puzzle '%s' does not accept setting '%s'", p.Name, k)
		}
		resolved[k] = v
	}
	return resolved, nil
}
