package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
)

// ErrNotDirectory is returned when the root exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Options controls traversal scope and extension comparison.
type Options struct {
	Recursive       bool
	CaseInsensitive bool
}

// Match returns the files under root whose names end in one of exts.
// Directories are never matched, even when their name carries the extension.
func Match(root string, exts []string, opts Options) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("enumerate %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("enumerate %s: %w", root, ErrNotDirectory)
	}

	m := newMatcher(exts, opts.CaseInsensitive)
	buckets := make([][]string, len(exts))
	visit := func(path string, d fs.DirEntry) {
		if isDirEntry(path, d) {
			return
		}
		if idx := m.index(d.Name()); idx >= 0 {
			buckets[idx] = append(buckets[idx], path)
		}
	}

	if opts.Recursive {
		// WalkDir does not follow a symlinked root; walk its target and report
		// paths under root as given.
		resolved, evalErr := filepath.EvalSymlinks(root)
		if evalErr != nil {
			return nil, fmt.Errorf("enumerate %s: %w", root, evalErr)
		}
		err = filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path == resolved {
				return nil
			}
			rel, relErr := filepath.Rel(resolved, path)
			if relErr != nil {
				return relErr
			}
			visit(filepath.Join(root, rel), d)
			return nil
		})
	} else {
		var entries []os.DirEntry
		entries, err = os.ReadDir(root)
		for _, entry := range entries {
			visit(filepath.Join(root, entry.Name()), entry)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("enumerate %s: %w", root, err)
	}

	var files []string
	for _, bucket := range buckets {
		files = append(files, bucket...)
	}
	return files, nil
}

// isDirEntry reports whether the entry is a directory, following symlinks so
// a link to a directory is not mistaken for a file.
func isDirEntry(path string, d fs.DirEntry) bool {
	if d.IsDir() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

type matcher struct {
	exts []string
	fold bool
}

func newMatcher(exts []string, fold bool) matcher {
	m := matcher{exts: make([]string, len(exts)), fold: fold}
	for i, ext := range exts {
		if fold {
			ext = foldCase(ext)
		}
		m.exts[i] = ext
	}
	return m
}

// index returns the position of the first extension name ends with, or -1.
func (m matcher) index(name string) int {
	if m.fold {
		name = foldCase(name)
	}
	for i, ext := range m.exts {
		if ext != "" && strings.HasSuffix(name, ext) {
			return i
		}
	}
	return -1
}

func foldCase(s string) string {
	return cases.Fold().String(s)
}
