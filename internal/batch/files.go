package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrOutputExists is returned by PrepareOutputDir when the directory must be
// new but is already present.
var ErrOutputExists = errors.New("output directory already exists")

// Stem returns the file name without its final extension. Dot-files with no
// further extension keep their full name.
func Stem(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// TargetPath computes where the converted file for source goes: beside the
// source when inPlace is set, otherwise flat inside outputDir. Sources with
// the same stem in different directories map to the same flat target.
func TargetPath(source, outputDir, ext string, inPlace bool) string {
	dir := outputDir
	if inPlace {
		dir = filepath.Dir(source)
	}
	return filepath.Join(dir, Stem(source)+ext)
}

// Plan builds one job per source.
func Plan(sources []string, outputDir, ext string, inPlace bool) []Job {
	jobs := make([]Job, 0, len(sources))
	for _, src := range sources {
		jobs = append(jobs, Job{Source: src, Target: TargetPath(src, outputDir, ext, inPlace)})
	}
	return jobs
}

// PrepareOutputDir creates dir and its parents. An existing directory is
// accepted unless mustNotExist is set; an existing non-directory is an error.
func PrepareOutputDir(dir string, mustNotExist bool) error {
	if !mustNotExist {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(filepath.Clean(dir)), 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	if err := os.Mkdir(dir, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s: %w", dir, ErrOutputExists)
		}
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return nil
}

// DeleteSources removes every path, reporting each failure to onError and
// continuing with the rest. It returns the number of files removed.
func DeleteSources(paths []string, onError func(path string, err error)) int {
	removed := 0
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			if onError != nil {
				onError(path, err)
			}
			continue
		}
		removed++
	}
	return removed
}
