package signature

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// HeaderSize is the number of leading bytes read from each file.
const HeaderSize = 16

// Entry associates a byte prefix with a human-readable media type.
type Entry struct {
	Pattern []byte
	Label   string
}

// Table is an immutable, ordered set of entries.
type Table struct {
	entries []Entry
}

var builtin = []Entry{
	{Pattern: []byte("\x00\x00\x00\x20ftyp"), Label: "MP4"},
	{Pattern: []byte{0x1A, 0x45, 0xDF, 0xA3}, Label: "MKV/WebM"},
	{Pattern: []byte("RIFF"), Label: "AVI/WAV"},
	{Pattern: []byte("OggS"), Label: "OGG"},
	{Pattern: []byte("ID3"), Label: "MP3"},
	{Pattern: []byte{0xFF, 0xFB}, Label: "MP3 (MPEG-1 Layer 3)"},
	{Pattern: []byte{0x00, 0x00, 0x01, 0xBA}, Label: "MPEG-PS"},
	{Pattern: []byte{0x00, 0x00, 0x01, 0xB3}, Label: "MPEG-1 Video"},
}

// Builtin returns the default media signature table.
func Builtin() Table {
	t, _ := NewTable(builtin)
	return t
}

// NewTable copies entries into a table. Patterns must be non-empty and no
// longer than HeaderSize, otherwise they could never match.
func NewTable(entries []Entry) (Table, error) {
	out := make([]Entry, 0, len(entries))
	for i, e := range entries {
		if len(e.Pattern) == 0 {
			return Table{}, fmt.Errorf("signature %d (%s): empty pattern", i, e.Label)
		}
		if len(e.Pattern) > HeaderSize {
			return Table{}, fmt.Errorf("signature %d (%s): pattern longer than %d bytes", i, e.Label, HeaderSize)
		}
		out = append(out, Entry{Pattern: bytes.Clone(e.Pattern), Label: e.Label})
	}
	return Table{entries: out}, nil
}

// Prepend returns a new table that consults extra before t.
func (t Table) Prepend(extra []Entry) (Table, error) {
	combined := make([]Entry, 0, len(extra)+len(t.entries))
	combined = append(combined, extra...)
	combined = append(combined, t.entries...)
	return NewTable(combined)
}

// Entries returns a copy of the table's entries in lookup order.
func (t Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = Entry{Pattern: bytes.Clone(e.Pattern), Label: e.Label}
	}
	return out
}

// Match returns the label of the first entry whose pattern prefixes header.
func (t Table) Match(header []byte) (string, bool) {
	for _, e := range t.entries {
		if bytes.HasPrefix(header, e.Pattern) {
			return e.Label, true
		}
	}
	return "", false
}

// ReadHeader reads up to HeaderSize bytes from r. Short input is not an error.
func ReadHeader(r io.Reader) ([]byte, error) {
	header := make([]byte, HeaderSize)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return header[:n], nil
}

// Identify opens path, reads its header, and matches it against t.
func (t Table) Identify(path string) (string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	header, err := ReadHeader(f)
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", path, err)
	}
	label, ok := t.Match(header)
	return label, ok, nil
}
