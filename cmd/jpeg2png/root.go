package main

import (
	"github.com/spf13/cobra"

	"imgtools/internal/cli"
	"imgtools/internal/preflight"
)

type convertOptions struct {
	recursive     bool
	leave         bool
	output        string
	deleteSources bool
	overwrite     bool
	workers       int
	workersSet    bool
}

func newRootCommand() *cobra.Command {
	ctx := cli.NewContext()
	var opts convertOptions

	rootCmd := &cobra.Command{
		Use:           "jpeg2png [directory]",
		Short:         "Convert JPEG images to PNG in parallel",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.workersSet = cmd.Flags().Changed("workers")
			return runConvert(cmd, ctx, opts, inputDir(args))
		},
	}
	ctx.BindFlags(rootCmd)

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.recursive, "recursive", "r", false, "Search for JPEG files in subdirectories")
	flags.BoolVarP(&opts.leave, "leave", "l", false, "Write each PNG next to its source instead of the output directory")
	flags.StringVarP(&opts.output, "output", "o", ".", "Directory receiving the converted PNG files")
	flags.BoolVarP(&opts.deleteSources, "deljpg", "d", false, "Delete the matched JPEG files after conversion")
	flags.BoolVarP(&opts.overwrite, "yes", "y", false, "Overwrite existing PNG files without asking")
	flags.IntVarP(&opts.workers, "workers", "w", 1, "Number of concurrent conversions")

	rootCmd.AddCommand(cli.NewCheckCommand(ctx, preflight.ToolJPEG2PNG, "."))
	rootCmd.AddCommand(cli.NewConfigCommand(ctx))

	return rootCmd
}

func inputDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
