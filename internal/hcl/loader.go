package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/aoc2023/internal/config"
	"github.com/vk/aoc2023/internal/ctxlog"
	"github.com/vk/aoc2023/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the top-level structure of a run file.
type fileRoot struct {
	Puzzles []*puzzleBlock `hcl:"puzzle,block"`
}

// puzzleBlock is the HCL schema of a `puzzle` block.
type puzzleBlock struct {
	Name     string         `hcl:"name,label"`
	Input    string         `hcl:"input,optional"`
	Parts    []int          `hcl:"parts,optional"`
	Settings hcl.Expression `hcl:"settings,optional"`
}

// Load parses every run file found under paths. Directories are searched
// recursively for .hcl files; plain file paths are loaded as given.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))
	if len(files) == 0 {
		logger.Warn("No .hcl run files found.", "paths", paths)
	}

	model := &config.Model{}
	parser := hclparse.NewParser()
	for _, file := range files {
		runs, err := l.loadFile(parser, file)
		if err != nil {
			return nil, err
		}
		model.Runs = append(model.Runs, runs...)
	}

	logger.Debug("HCL loading complete.", "runs", len(model.Runs))
	return model, nil
}

func (l *Loader) loadFile(parser *hclparse.Parser, file string) ([]*config.Run, error) {
	hclFile, diags := parser.ParseHCLFile(file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
	}

	dir, err := filepath.Abs(filepath.Dir(file))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory of %s: %w", file, err)
	}
	evalCtx := newEvalContext(dir)

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
	}

	runs := make([]*config.Run, 0, len(root.Puzzles))
	for _, block := range root.Puzzles {
		run, diags := translatePuzzle(block, dir, evalCtx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid puzzle %q in %s: %w", block.Name, file, diags)
		}
		run.Source = file
		runs = append(runs, run)
	}
	return runs, nil
}

// newEvalContext exposes the variables available to run file expressions.
func newEvalContext(dir string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"config_dir":    cty.StringVal(dir),
			"default_input": cty.StringVal(config.DefaultInputPath),
		},
	}
}

// findAllHCLFiles expands every path into a flat, de-duplicated list of files.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		found := []string{path}
		if info.IsDir() {
			found, err = fsutil.FindFiles(path, ".hcl")
			if err != nil {
				return nil, fmt.Errorf("failed to find run files in %s: %w", path, err)
			}
		}

		for _, f := range found {
			if _, wasSeen := seen[f]; !wasSeen {
				allFiles = append(allFiles, f)
				seen[f] = struct{}{}
			}
		}
	}
	return allFiles, nil
}
