package preflight

import (
	"fmt"
	"strings"

	"imgtools/internal/config"
	"imgtools/internal/deps"
)

// Tool names accepted by Requirements and RunAll.
const (
	ToolJPEG2PNG = "jpeg2png"
	ToolWEBP2PNG = "webp2png"
	ToolScanSig  = "scansig"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Requirements lists the executables the named tool invokes.
func Requirements(cfg *config.Config, tool string) []deps.Requirement {
	if cfg == nil {
		return nil
	}
	switch tool {
	case ToolJPEG2PNG:
		return []deps.Requirement{{
			Name:        "FFmpeg",
			Command:     cfg.JPEG2PNG.Binary,
			Description: "Transcodes JPEG to PNG",
		}}
	case ToolWEBP2PNG:
		return []deps.Requirement{{
			Name:        "cwebp",
			Command:     cfg.WEBP2PNG.Binary,
			Description: "Lossless WEBP transcoder",
		}}
	default:
		return nil
	}
}

// RequireTranscoder fails when any required executable of tool is missing.
func RequireTranscoder(cfg *config.Config, tool string) error {
	missing := deps.Missing(deps.CheckBinaries(Requirements(cfg, tool)))
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, 0, len(missing))
	for _, m := range missing {
		names = append(names, fmt.Sprintf("%s (%s)", m.Name, m.Detail))
	}
	return fmt.Errorf("missing external transcoder: %s", strings.Join(names, ", "))
}

// RunAll executes every check applicable to tool. outputDir may be empty when
// the tool writes nothing or writes beside its sources.
func RunAll(cfg *config.Config, tool, inputDir, outputDir string) []Result {
	var results []Result
	for _, status := range deps.CheckBinaries(Requirements(cfg, tool)) {
		detail := status.Detail
		if status.Available {
			detail = status.Path
		}
		results = append(results, Result{Name: status.Name, Passed: status.Available, Detail: detail})
	}
	if strings.TrimSpace(inputDir) != "" {
		results = append(results, CheckReadableDirectory("Input directory", inputDir))
	}
	if strings.TrimSpace(outputDir) != "" {
		results = append(results, CheckOutputDirectory("Output directory", outputDir, cfg != nil && cfg.Output.MustNotExist))
	}
	return results
}
