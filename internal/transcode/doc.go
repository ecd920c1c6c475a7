// Package transcode runs the external image transcoders.
//
// Commands are always built as argument vectors and started directly, never
// through a shell, so paths containing quotes, spaces, or other shell
// metacharacters reach the transcoder untouched. Standard output is discarded
// and standard error is kept only as a short tail for error messages. Each
// invocation is bound to the caller's context and, optionally, a per-file
// timeout; cancellation kills the child process.
package transcode
