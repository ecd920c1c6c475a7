// Package signature identifies media containers by the magic bytes at the
// start of a file.
//
// A Table is an ordered list of prefix patterns. Lookup reads at most
// HeaderSize bytes and returns the label of the first entry whose pattern is
// a prefix of the header; declaration order breaks ties, so a more specific
// pattern must be listed before a shorter one it shares a prefix with. A file
// shorter than a pattern simply does not match it.
package signature
