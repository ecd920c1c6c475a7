// Package runlock prevents two runs from writing into the same output
// directory at once.
//
// Converters flatten outputs into one directory by file stem, so concurrent
// runs against the same target would overwrite each other's files. The lock
// file lives in the OS temp directory, keyed by a hash of the absolute target
// path, so the output directory itself only ever holds converted images.
package runlock
