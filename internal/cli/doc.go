// Package cli holds the cobra plumbing shared by the imgtools binaries.
//
// Each binary builds its own root command and hands it a Context, which
// resolves configuration once per invocation and hands out a run-scoped
// logger. The config and check subcommands are identical across tools apart
// from the requirements they report, so they live here too. Execute wires
// SIGINT/SIGTERM into the command context and maps the returned error onto the
// process exit code.
package cli
