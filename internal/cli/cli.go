package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/aoc2023/internal/app"
	"github.com/vk/aoc2023/internal/config"
	"github.com/vk/aoc2023/internal/report"
)

// Exit codes returned through ExitError.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("aoc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
aoc - Advent of Code 2023 puzzle solvers.

Usage:
  aoc [options] [PUZZLE...]

Arguments:
  PUZZLE
    Name of a puzzle to solve, e.g. day3. With -config, selects puzzles
    from the run configuration instead.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an .hcl run file or a directory of run files.")
	cFlag := flagSet.String("c", "", "Path to an .hcl run file or directory (shorthand).")
	inputFlag := flagSet.String("input", config.DefaultInputPath, "Input file for puzzles named on the command line.")
	iFlag := flagSet.String("i", "", "Input file (shorthand).")
	partFlag := flagSet.Int("part", 0, "Solve only this part. 0 solves every part.")
	outputFlag := flagSet.String("output", report.FormatText, "Result format. Options: 'text', 'json' or 'yaml'.")
	logFormatFlag := flagSet.String("log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", app.DefaultLogLevel, "Set the logging level. Options: "+strings.Join(app.LogLevels(), ", ")+".")
	listFlag := flagSet.Bool("list", false, "List the available puzzles and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	configPath := *configFlag
	if configPath == "" {
		configPath = *cFlag
	}
	inputPath := *inputFlag
	if *iFlag != "" {
		inputPath = *iFlag
	}
	puzzles := flagSet.Args()
	slog.Debug("Run target determined.", "config", configPath, "puzzles", puzzles)

	if configPath == "" && len(puzzles) == 0 && !*listFlag {
		slog.Debug("Nothing to run, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if !app.IsValidLogFormat(logFormat) {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if _, err := app.ParseLogLevel(logLevel); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	outputFormat := strings.ToLower(*outputFlag)
	if !report.IsValidFormat(outputFormat) {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid output: must be 'text', 'json', or 'yaml'"}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		ConfigPath:   configPath,
		Puzzles:      puzzles,
		InputPath:    inputPath,
		Part:         *partFlag,
		OutputFormat: outputFormat,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		List:         *listFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
