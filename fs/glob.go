// Package fs discovers the markdown files a viewer session displays.
package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob returns the files under dir matching pattern, sorted. Directories
// are never returned. Supports ** for recursive matching.
func Glob(dir, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}

	var matches []string
	err := doublestar.GlobWalk(os.DirFS(dir), pattern, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		matches = append(matches, filepath.Join(dir, filepath.FromSlash(path)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("matching %q: %w", pattern, err)
	}

	sort.Strings(matches)
	return matches, nil
}
