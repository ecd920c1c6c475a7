package main

import (
	"github.com/spf13/cobra"

	"imgtools/internal/cli"
	"imgtools/internal/preflight"
)

const defaultOutputDir = "./output"

type convertOptions struct {
	recursive    bool
	output       string
	keepGoing    bool
	keepGoingSet bool
}

func newRootCommand() *cobra.Command {
	ctx := cli.NewContext()
	var opts convertOptions

	rootCmd := &cobra.Command{
		Use:           "webp2png [directory]",
		Short:         "Convert WEBP images to PNG one at a time",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.keepGoingSet = cmd.Flags().Changed("keep-going")
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runConvert(cmd, ctx, opts, dir)
		},
	}
	ctx.BindFlags(rootCmd)

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.recursive, "recursive", "r", false, "Search for WEBP files in subdirectories")
	flags.StringVarP(&opts.output, "output", "o", defaultOutputDir, "Directory receiving the converted PNG files")
	flags.BoolVarP(&opts.keepGoing, "keep-going", "k", false, "Continue after a failed conversion instead of aborting")

	rootCmd.AddCommand(cli.NewCheckCommand(ctx, preflight.ToolWEBP2PNG, defaultOutputDir))
	rootCmd.AddCommand(cli.NewConfigCommand(ctx))

	return rootCmd
}
