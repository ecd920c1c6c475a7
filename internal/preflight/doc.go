// Package preflight provides readiness checks for the external transcoders
// and filesystem paths the imgtools binaries depend on.
//
// These checks run in two contexts:
//   - The converters call RequireTranscoder before enumerating work, so a
//     missing binary fails once instead of once per file.
//   - The "check" subcommand of each binary uses RunAll to display a table of
//     dependency and directory health.
package preflight
