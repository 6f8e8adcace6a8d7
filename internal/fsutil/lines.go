package fsutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineLength caps a single input line. Puzzle inputs are far below it.
const maxLineLength = 1 << 20

// ReadLines returns the lines of the file at path without their line
// terminators. Windows line endings are accepted.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ScanLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}
	return lines, nil
}

// ScanLines reads r to the end and splits it into lines.
func ScanLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
