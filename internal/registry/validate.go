package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/aoc2023/internal/ctxlog"
)

// ValidateRegistry checks that every registered puzzle can actually be run.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, name := range r.Names() {
		p := r.puzzles[name]
		if len(p.Parts) == 0 {
			errs = append(errs, fmt.Sprintf("puzzle '%s': no parts registered", name))
			continue
		}
		for i, fn := range p.Parts {
			if fn == nil {
				errs = append(errs, fmt.Sprintf("puzzle '%s': part %d has no solver", name, i+1))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation successful.", "puzzles", len(r.puzzles))
	return nil
}
