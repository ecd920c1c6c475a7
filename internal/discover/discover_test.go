package discover

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, root string, rel ...string) {
	t.Helper()
	for _, r := range rel {
		path := filepath.Join(root, r)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

func rel(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatalf("rel: %v", err)
		}
		out = append(out, filepath.ToSlash(r))
	}
	return out
}

func TestMatchNonRecursiveOnlyDirectChildren(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "b.jpg", "a.jpeg", "a.jpg", "notes.txt", "sub/c.jpg", "sub/deeper/d.jpeg")

	got, err := Match(root, []string{".jpg", ".jpeg"}, Options{})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	want := []string{"a.jpg", "b.jpg", "a.jpeg"}
	if !reflect.DeepEqual(rel(t, root, got), want) {
		t.Fatalf("got %v want %v", rel(t, root, got), want)
	}
}

func TestMatchRecursiveTwoLevels(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "top.webp", "l1/mid.webp", "l1/l2/deep.webp", "l1/l2/skip.png")

	got, err := Match(root, []string{".webp"}, Options{Recursive: true})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	want := []string{"l1/l2/deep.webp", "l1/mid.webp", "top.webp"}
	if !reflect.DeepEqual(rel(t, root, got), want) {
		t.Fatalf("got %v want %v", rel(t, root, got), want)
	}
}

func TestMatchSkipsDirectoriesNamedLikeFiles(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "album.jpg"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	touch(t, root, "album.jpg/inner.jpg")

	got, err := Match(root, []string{".jpg"}, Options{})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}

	got, err = Match(root, []string{".jpg"}, Options{Recursive: true})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if want := []string{"album.jpg/inner.jpg"}; !reflect.DeepEqual(rel(t, root, got), want) {
		t.Fatalf("got %v want %v", rel(t, root, got), want)
	}
}

func TestMatchCaseSensitivity(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "upper.JPG", "lower.jpg")

	got, err := Match(root, []string{".jpg"}, Options{})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if want := []string{"lower.jpg"}; !reflect.DeepEqual(rel(t, root, got), want) {
		t.Fatalf("case-sensitive: got %v want %v", rel(t, root, got), want)
	}

	got, err = Match(root, []string{".jpg"}, Options{CaseInsensitive: true})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if want := []string{"lower.jpg", "upper.JPG"}; !reflect.DeepEqual(rel(t, root, got), want) {
		t.Fatalf("case-insensitive: got %v want %v", rel(t, root, got), want)
	}
}

func TestMatchThroughSymlinkedRoot(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "real")
	touch(t, target, "a.jpg", "sub/b.jpg")
	link := filepath.Join(base, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	got, err := Match(link, []string{".jpg"}, Options{})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if want := []string{"a.jpg"}; !reflect.DeepEqual(rel(t, link, got), want) {
		t.Fatalf("non-recursive: got %v want %v", rel(t, link, got), want)
	}

	got, err = Match(link, []string{".jpg"}, Options{Recursive: true})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if want := []string{"a.jpg", "sub/b.jpg"}; !reflect.DeepEqual(rel(t, link, got), want) {
		t.Fatalf("recursive: got %v want %v", rel(t, link, got), want)
	}
	for _, p := range got {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("reported path %s does not resolve: %v", p, err)
		}
	}
}

func TestMatchEmptyDirectory(t *testing.T) {
	got, err := Match(t.TempDir(), []string{".bin"}, Options{Recursive: true})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestMatchErrors(t *testing.T) {
	root := t.TempDir()
	if _, err := Match(filepath.Join(root, "missing"), []string{".bin"}, Options{}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}

	file := filepath.Join(root, "file.bin")
	touch(t, root, "file.bin")
	if _, err := Match(file, []string{".bin"}, Options{}); !errors.Is(err, ErrNotDirectory) {
		t.Fatalf("expected ErrNotDirectory, got %v", err)
	}
}
