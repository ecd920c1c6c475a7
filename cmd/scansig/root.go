package main

import (
	"github.com/spf13/cobra"

	"imgtools/internal/cli"
	"imgtools/internal/preflight"
)

type scanOptions struct {
	recursive bool
	ext       string
	table     bool
}

func newRootCommand() *cobra.Command {
	ctx := cli.NewContext()
	var opts scanOptions

	rootCmd := &cobra.Command{
		Use:           "scansig [directory]",
		Short:         "Identify .bin files by their leading signature bytes",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runScan(cmd, ctx, opts, dir)
		},
	}
	ctx.BindFlags(rootCmd)

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.recursive, "recursive", "r", false, "Search subdirectories recursively")
	flags.StringVar(&opts.ext, "ext", "", "File extension to scan (default from config, .bin)")
	flags.BoolVar(&opts.table, "table", false, "Render results as a table")

	rootCmd.AddCommand(cli.NewCheckCommand(ctx, preflight.ToolScanSig, ""))
	rootCmd.AddCommand(cli.NewConfigCommand(ctx))

	return rootCmd
}
