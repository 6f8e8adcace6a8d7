// Package fsutil reads puzzle inputs and locates run files on disk.
package fsutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// FindFiles walks root and returns the files whose name ends in ext,
// compared case-insensitively, in lexical order. Hidden directories such as
// .git are not entered.
func FindFiles(root, ext string) ([]string, error) {
	if !strings.HasPrefix(ext, ".") {
		return nil, fmt.Errorf("extension %q must start with '.'", ext)
	}
	ext = strings.ToLower(ext)

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(strings.ToLower(d.Name()), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
