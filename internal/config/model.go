package config

import "fmt"

// DefaultInputPath is the input file read when nothing else is configured.
const DefaultInputPath = "input.txt"

// Model is the unified, format-agnostic representation of a run.
type Model struct {
	Runs []*Run
}

// Run is one puzzle to solve.
type Run struct {
	Puzzle string
	Input  string
	// Parts lists the 1-based parts to solve; empty means all of them.
	Parts    []int
	Settings map[string]int
	// Source is where the run was declared, for error messages.
	Source string
}

// String implements fmt.Stringer.
func (r *Run) String() string {
	if r.Source == "" {
		return r.Puzzle
	}
	return fmt.Sprintf("%s (%s)", r.Puzzle, r.Source)
}

// Select keeps only the runs whose puzzle is named. An empty list keeps
// everything. Naming a puzzle absent from the model is an error.
func (m *Model) Select(names ...string) (*Model, error) {
	if len(names) == 0 {
		return m, nil
	}

	byName := make(map[string][]*Run)
	for _, r := range m.Runs {
		byName[r.Puzzle] = append(byName[r.Puzzle], r)
	}

	out := &Model{}
	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		runs, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("puzzle '%s' is not declared in the run configuration", name)
		}
		out.Runs = append(out.Runs, runs...)
	}
	return out, nil
}
