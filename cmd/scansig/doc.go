// Package main hosts the scansig entrypoint, which guesses the media type of
// opaque .bin files from their first bytes.
package main
