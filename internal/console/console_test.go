package console

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestRenderTablePadsShortRows(t *testing.T) {
	out := RenderTable(
		[]string{"File", "Format"},
		[][]string{{"a.bin", "MP4"}, {"b.bin"}},
		[]Alignment{AlignLeft, AlignRight},
	)
	for _, want := range []string{"File", "Format", "a.bin", "MP4", "b.bin"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "╭") {
		t.Fatalf("expected rounded style, got:\n%s", out)
	}
}

func TestRenderTableWithoutHeaders(t *testing.T) {
	if out := RenderTable(nil, [][]string{{"x"}}, nil); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestMarker(t *testing.T) {
	tests := []struct {
		ok       bool
		colorize bool
		want     string
	}{
		{true, false, "[Y]"},
		{false, false, "[N]"},
		{true, true, ansiGreen + "[Y]" + ansiReset},
		{false, true, ansiRed + "[N]" + ansiReset},
	}
	for _, tc := range tests {
		if got := Marker(tc.ok, tc.colorize); got != tc.want {
			t.Fatalf("Marker(%v, %v) = %q, want %q", tc.ok, tc.colorize, got, tc.want)
		}
	}
}

func TestIsTerminalFalseForBuffersAndFiles(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Fatal("buffer is not a terminal")
	}
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Fatal("regular file is not a terminal")
	}
}
