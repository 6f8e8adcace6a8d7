// Package report renders puzzle answers for the terminal or for other tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Result is the answer to one part of one puzzle.
type Result struct {
	Puzzle string `json:"puzzle" yaml:"puzzle"`
	Part   int    `json:"part" yaml:"part"`
	Answer int    `json:"answer" yaml:"answer"`
	Input  string `json:"input,omitempty" yaml:"input,omitempty"`
}

// IsValidFormat reports whether Write understands format.
func IsValidFormat(format string) bool {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Write renders results to w in the given format.
func Write(w io.Writer, format string, results []Result) error {
	switch format {
	case FormatText:
		return writeText(w, results)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if results == nil {
			results = []Result{}
		}
		return enc.Encode(results)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, results []Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s part %d: %d\n", r.Puzzle, r.Part, r.Answer); err != nil {
			return err
		}
	}
	return nil
}
