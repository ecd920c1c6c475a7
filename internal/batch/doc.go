// Package batch drives an external converter over a set of matched files.
//
// Pool fans jobs out to a fixed number of workers and collects outcomes on
// the calling goroutine, so the running counts need no locking and observers
// are never called concurrently. A failed file never stops a Pool run.
// Sequence converts one file at a time in order and, unless KeepGoing is set,
// aborts on the first failure.
//
// The package also owns the file-level plumbing around a run: computing
// destination paths, preparing the output directory, and deleting sources.
package batch
