package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"imgtools/internal/batch"
	"imgtools/internal/cli"
	"imgtools/internal/console"
	"imgtools/internal/discover"
	"imgtools/internal/logging"
	"imgtools/internal/preflight"
	"imgtools/internal/transcode"
)

// errFailures is returned after a keep-going run that recorded failures.
var errFailures = errors.New("some files failed to convert")

func runConvert(cmd *cobra.Command, ctx *cli.Context, opts convertOptions, dir string) error {
	out := cmd.OutOrStdout()

	cfg, err := ctx.Config()
	if err != nil {
		return err
	}
	logger, err := ctx.Logger("webp2png")
	if err != nil {
		return err
	}
	keepGoing := cfg.WEBP2PNG.KeepGoing
	if opts.keepGoingSet {
		keepGoing = opts.keepGoing
	}

	if err := preflight.RequireTranscoder(cfg, preflight.ToolWEBP2PNG); err != nil {
		return err
	}

	sources, err := discover.Match(dir, []string{".webp"}, discover.Options{
		Recursive:       opts.recursive,
		CaseInsensitive: cfg.Match.CaseInsensitive,
	})
	if err != nil {
		return fmt.Errorf("enumerate %s: %w", dir, err)
	}
	if len(sources) == 0 {
		fmt.Fprintln(out, "No .webp files found.")
		return nil
	}

	lock, err := cli.AcquireLock(opts.output)
	if err != nil {
		return err
	}
	defer lock.Release() //nolint:errcheck

	if err := batch.PrepareOutputDir(opts.output, cfg.Output.MustNotExist); err != nil {
		return err
	}
	logger.Info("conversion starting",
		logging.String("input", dir),
		logging.String("output", opts.output),
		logging.Int("files", len(sources)),
		logging.Bool("keep_going", keepGoing),
	)

	colorize := console.IsTerminal(out)
	seq := batch.Sequence{
		Converter: transcode.Cwebp{
			Runner: transcode.Runner{Binary: cfg.WEBP2PNG.Binary, Timeout: cfg.WEBPTimeout()},
		},
		KeepGoing: keepGoing,
		Logger:    logger,
		Observer: batch.ObserverFunc(func(done, total int, o batch.Outcome) {
			switch {
			case o.OK():
				fmt.Fprintf(out, "Converted %d/%d files.\n", done, total)
			case keepGoing:
				fmt.Fprintf(out, "%s Failed %d/%d: %s\n", console.Marker(false, colorize), done, total, filepath.Base(o.Source))
			}
		}),
	}
	summary, err := seq.Run(cmd.Context(), batch.Plan(sources, opts.output, ".png", false))
	if err != nil {
		return err
	}

	if !keepGoing {
		fmt.Fprintln(out, "Conversion complete.")
		return nil
	}
	fmt.Fprintf(out, "Conversion complete: %d successful, %d failed.\n", summary.Succeeded, summary.Failed)
	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", errFailures, summary.Failed, summary.Total)
	}
	return nil
}
