package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"imgtools/internal/console"
	"imgtools/internal/preflight"
)

// ErrCheckFailed is returned by the check command when any row failed.
var ErrCheckFailed = errors.New("one or more checks failed")

// NewCheckCommand returns a "check" command reporting the tool's external
// binaries and directory access as a table. An empty defaultOutput means the
// tool writes nothing and no --output flag is offered.
func NewCheckCommand(ctx *Context, tool, defaultOutput string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "check [directory]",
		Short: "Verify external tools and directory access",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.Config()
			if err != nil {
				return err
			}
			input := "."
			if len(args) > 0 {
				input = args[0]
			}
			results := preflight.RunAll(cfg, tool, input, output)

			colorize := console.IsTerminal(cmd.OutOrStdout())
			rows := make([][]string, 0, len(results))
			failed := 0
			for _, r := range results {
				if !r.Passed {
					failed++
				}
				rows = append(rows, []string{console.Marker(r.Passed, colorize), r.Name, r.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), console.RenderTable(
				[]string{"", "Check", "Detail"},
				rows,
				[]console.Alignment{console.AlignLeft, console.AlignLeft, console.AlignLeft},
			))
			if failed > 0 {
				return fmt.Errorf("%w (%d)", ErrCheckFailed, failed)
			}
			return nil
		},
	}
	if defaultOutput != "" {
		cmd.Flags().StringVarP(&output, "output", "o", defaultOutput, "Output directory to check")
	}
	return cmd
}
