package app

import (
	"errors"
	"fmt"

	"github.com/vk/aoc2023/internal/config"
	"github.com/vk/aoc2023/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string   // hcl run file or directory
	Puzzles    []string // puzzle names; selects from ConfigPath when both are set
	InputPath  string   // input for puzzles named without a run file
	Part       int      // 0 runs every part

	OutputFormat string
	LogFormat    string
	LogLevel     string
	List         bool
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" && len(cfg.Puzzles) == 0 && !cfg.List {
		return nil, errors.New("either a run configuration or at least one puzzle name is required")
	}
	if cfg.Part < 0 {
		return nil, fmt.Errorf("part must be 0 (all) or a positive number, got %d", cfg.Part)
	}

	if cfg.InputPath == "" {
		cfg.InputPath = config.DefaultInputPath
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = report.FormatText
	}
	if !report.IsValidFormat(cfg.OutputFormat) {
		return nil, fmt.Errorf("unknown output format %q", cfg.OutputFormat)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if !IsValidLogFormat(cfg.LogFormat) {
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}

	return &cfg, nil
}
