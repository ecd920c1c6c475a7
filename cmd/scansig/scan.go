package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"imgtools/internal/cli"
	"imgtools/internal/config"
	"imgtools/internal/console"
	"imgtools/internal/discover"
	"imgtools/internal/logging"
	"imgtools/internal/signature"
)

func runScan(cmd *cobra.Command, ctx *cli.Context, opts scanOptions, dir string) error {
	out := cmd.OutOrStdout()

	cfg, err := ctx.Config()
	if err != nil {
		return err
	}
	logger, err := ctx.Logger("scansig")
	if err != nil {
		return err
	}

	ext := cfg.ScanSig.Extension
	if strings.TrimSpace(opts.ext) != "" {
		ext = normalizeExt(opts.ext)
	}
	table, err := buildTable(cfg.Signatures)
	if err != nil {
		return err
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", dir, err)
	}
	paths, err := discover.Match(root, []string{ext}, discover.Options{
		Recursive:       opts.recursive,
		CaseInsensitive: cfg.Match.CaseInsensitive,
	})
	if err != nil {
		return fmt.Errorf("enumerate %s: %w", dir, err)
	}
	if len(paths) == 0 {
		fmt.Fprintf(out, "No %s files found\n", ext)
		return nil
	}
	logger.Info("scanning", logging.String("root", root), logging.Int("files", len(paths)), logging.Int("signatures", len(table.Entries())))

	emit := func(r signature.Result) { fmt.Fprintln(out, r.Describe()) }
	if opts.table {
		emit = nil
	}
	results, err := table.Scan(paths, emit)
	if opts.table {
		renderResults(cmd, results)
	}
	if err != nil {
		return err
	}

	known := 0
	for _, r := range results {
		if r.Known {
			known++
		}
	}
	logger.Debug("scan finished", logging.Int("known", known), logging.Int("unknown", len(results)-known))
	return nil
}

func buildTable(custom []config.Signature) (signature.Table, error) {
	if len(custom) == 0 {
		return signature.Builtin(), nil
	}
	extra := make([]signature.Entry, 0, len(custom))
	for _, sig := range custom {
		pattern, err := sig.Bytes()
		if err != nil {
			return signature.Table{}, fmt.Errorf("signature %q: %w", sig.Label, err)
		}
		extra = append(extra, signature.Entry{Pattern: pattern, Label: sig.Label})
	}
	return signature.Builtin().Prepend(extra)
}

func renderResults(cmd *cobra.Command, results []signature.Result) {
	if len(results) == 0 {
		return
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Path, r.Label})
	}
	fmt.Fprintln(cmd.OutOrStdout(), console.RenderTable(
		[]string{"File", "Format"},
		rows,
		[]console.Alignment{console.AlignLeft, console.AlignLeft},
	))
}

func normalizeExt(ext string) string {
	ext = strings.TrimSpace(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
