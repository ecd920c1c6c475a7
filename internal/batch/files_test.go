package batch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"imgtools/internal/testsupport"
)

func TestStem(t *testing.T) {
	tests := map[string]string{
		"/a/photo.jpg":     "photo",
		"/a/photo.x.jpeg":  "photo.x",
		"/a/.hidden":       ".hidden",
		"/a/noext":         "noext",
		"rel/dir/pic.webp": "pic",
	}
	for in, want := range tests {
		if got := Stem(in); got != want {
			t.Fatalf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTargetPath(t *testing.T) {
	if got := TargetPath("/in/sub/a.jpg", "/out", ".png", false); got != filepath.FromSlash("/out/a.png") {
		t.Fatalf("flat target: %q", got)
	}
	if got := TargetPath("/in/sub/a.jpg", "/out", ".png", true); got != filepath.FromSlash("/in/sub/a.png") {
		t.Fatalf("in-place target: %q", got)
	}
}

func TestPlanCollidingStemsShareTarget(t *testing.T) {
	jobs := Plan([]string{"/in/x/a.jpg", "/in/y/a.jpeg"}, "/out", ".png", false)
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].Target != jobs[1].Target {
		t.Fatalf("expected flat collision, got %q and %q", jobs[0].Target, jobs[1].Target)
	}
}

func TestPrepareOutputDir(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")

	if err := PrepareOutputDir(nested, false); err != nil {
		t.Fatalf("create nested: %v", err)
	}
	if err := PrepareOutputDir(nested, false); err != nil {
		t.Fatalf("existing dir should be tolerated: %v", err)
	}
	if err := PrepareOutputDir(nested, true); !errors.Is(err, ErrOutputExists) {
		t.Fatalf("expected ErrOutputExists, got %v", err)
	}

	fresh := filepath.Join(root, "x", "y")
	if err := PrepareOutputDir(fresh, true); err != nil {
		t.Fatalf("strict create: %v", err)
	}
	if info, err := os.Stat(fresh); err != nil || !info.IsDir() {
		t.Fatalf("expected %s to be a directory: %v", fresh, err)
	}

	file := filepath.Join(root, "file")
	testsupport.WriteFile(t, file, 1)
	if err := PrepareOutputDir(file, false); err == nil {
		t.Fatal("expected error when output path is a file")
	}
}

func TestDeleteSourcesContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	paths := testsupport.Tree(t, dir, "a.jpg", "b.jpg")
	missing := filepath.Join(dir, "gone.jpg")
	all := []string{paths[0], missing, paths[1]}

	var failed []string
	removed := DeleteSources(all, func(path string, err error) {
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("unexpected error: %v", err)
		}
		failed = append(failed, path)
	})
	if removed != 2 {
		t.Fatalf("expected 2 removals, got %d", removed)
	}
	if len(failed) != 1 || failed[0] != missing {
		t.Fatalf("unexpected failures: %v", failed)
	}
	for _, p := range paths {
		if testsupport.Exists(p) {
			t.Fatalf("%s should be deleted", p)
		}
	}
}
