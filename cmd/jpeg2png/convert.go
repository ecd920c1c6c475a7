package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"imgtools/internal/batch"
	"imgtools/internal/cli"
	"imgtools/internal/console"
	"imgtools/internal/discover"
	"imgtools/internal/logging"
	"imgtools/internal/preflight"
	"imgtools/internal/transcode"
)

var sourceExtensions = []string{".jpg", ".jpeg"}

func runConvert(cmd *cobra.Command, ctx *cli.Context, opts convertOptions, dir string) error {
	started := time.Now()
	out := cmd.OutOrStdout()

	cfg, err := ctx.Config()
	if err != nil {
		return err
	}
	logger, err := ctx.Logger("jpeg2png")
	if err != nil {
		return err
	}

	workers := cfg.JPEG2PNG.Workers
	if opts.workersSet {
		workers = opts.workers
	}
	if workers < 1 {
		workers = 1
	}

	if err := preflight.RequireTranscoder(cfg, preflight.ToolJPEG2PNG); err != nil {
		return err
	}

	sources, err := discover.Match(dir, sourceExtensions, discover.Options{
		Recursive:       opts.recursive,
		CaseInsensitive: cfg.Match.CaseInsensitive,
	})
	if err != nil {
		return fmt.Errorf("enumerate %s: %w", dir, err)
	}
	if len(sources) == 0 {
		fmt.Fprintln(out, "No .jpeg/.jpg files found.")
		return nil
	}

	lockTarget := opts.output
	if opts.leave {
		lockTarget = dir
	}
	lock, err := cli.AcquireLock(lockTarget)
	if err != nil {
		return err
	}
	defer lock.Release() //nolint:errcheck

	if !opts.leave {
		if err := batch.PrepareOutputDir(opts.output, cfg.Output.MustNotExist); err != nil {
			return err
		}
	}

	logger.Info("conversion starting",
		logging.String("input", dir),
		logging.String("output", lockTarget),
		logging.Int("files", len(sources)),
		logging.Int("workers", workers),
	)
	fmt.Fprintf(out, "Found %d image(s). Starting conversion...\n", len(sources))

	colorize := console.IsTerminal(out)
	pool := batch.Pool{
		Converter: transcode.FFmpeg{
			Runner:    transcode.Runner{Binary: cfg.JPEG2PNG.Binary, Timeout: cfg.JPEGTimeout()},
			Overwrite: opts.overwrite,
		},
		Workers: workers,
		Logger:  logger,
		Observer: batch.ObserverFunc(func(done, total int, o batch.Outcome) {
			fmt.Fprintf(out, "%s Converted %d/%d: %s\n", console.Marker(o.OK(), colorize), done, total, filepath.Base(o.Source))
		}),
	}
	summary, err := pool.Run(cmd.Context(), batch.Plan(sources, opts.output, ".png", opts.leave))
	if err != nil {
		logger.Warn("conversion interrupted",
			logging.Int("succeeded", summary.Succeeded),
			logging.Int("failed", summary.Failed),
			logging.Error(err),
		)
		return err
	}
	fmt.Fprintf(out, "Conversion complete: %d successful, %d failed.\n", summary.Succeeded, summary.Failed)

	if opts.deleteSources {
		removed := batch.DeleteSources(sources, func(path string, err error) {
			logger.Warn("delete failed", logging.String(logging.FieldFile, path), logging.Error(err))
			fmt.Fprintf(out, "Failed to delete %s: %v\n", path, err)
		})
		logger.Info("sources deleted", logging.Int("removed", removed), logging.Int("matched", len(sources)))
		fmt.Fprintln(out, "Deleted all jpeg/jpg files.")
	} else {
		fmt.Fprintln(out, "Original files kept.")
	}

	fmt.Fprintf(out, "Total execution time: %.2f seconds.\n", time.Since(started).Seconds())
	return nil
}
