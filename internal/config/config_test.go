package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"imgtools/internal/config"
)

func TestLoadDefaultsWhenNoFilePresent(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("IMGTOOLS_FFMPEG", "")
	t.Setenv("IMGTOOLS_CWEBP", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(tempHome, ".config", "imgtools", "config.toml")
	if resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.JPEG2PNG.Binary != "ffmpeg" {
		t.Fatalf("unexpected jpeg2png binary: %q", cfg.JPEG2PNG.Binary)
	}
	if cfg.WEBP2PNG.Binary != "cwebp" {
		t.Fatalf("unexpected webp2png binary: %q", cfg.WEBP2PNG.Binary)
	}
	if cfg.JPEG2PNG.Workers != 1 {
		t.Fatalf("expected a single worker by default, got %d", cfg.JPEG2PNG.Workers)
	}
	if cfg.JPEGTimeout() != 0 || cfg.WEBPTimeout() != 0 {
		t.Fatal("expected no transcoder timeout by default")
	}
	if cfg.ScanSig.Extension != ".bin" {
		t.Fatalf("unexpected scan extension: %q", cfg.ScanSig.Extension)
	}
	if cfg.Output.MustNotExist {
		t.Fatal("expected tolerant output directory policy by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "imgtools.toml")
	t.Setenv("IMGTOOLS_FFMPEG", "")

	type payload struct {
		JPEG2PNG struct {
			Binary         string `toml:"binary"`
			Workers        int    `toml:"workers"`
			TimeoutSeconds int    `toml:"timeout_seconds"`
		} `toml:"jpeg2png"`
		ScanSig struct {
			Extension string `toml:"extension"`
		} `toml:"scansig"`
		Signatures []config.Signature `toml:"signatures"`
		Output     struct {
			MustNotExist bool `toml:"must_not_exist"`
		} `toml:"output"`
	}
	custom := payload{}
	custom.JPEG2PNG.Binary = "/opt/ffmpeg/bin/ffmpeg"
	custom.JPEG2PNG.Workers = 8
	custom.JPEG2PNG.TimeoutSeconds = 30
	custom.ScanSig.Extension = "DAT "
	custom.Signatures = []config.Signature{{Pattern: "89 50 4E 47", Label: " PNG "}}
	custom.Output.MustNotExist = true
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.JPEG2PNG.Binary != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("expected binary from file, got %q", cfg.JPEG2PNG.Binary)
	}
	if cfg.JPEG2PNG.Workers != 8 {
		t.Fatalf("expected 8 workers, got %d", cfg.JPEG2PNG.Workers)
	}
	if cfg.JPEGTimeout().Seconds() != 30 {
		t.Fatalf("expected 30s timeout, got %s", cfg.JPEGTimeout())
	}
	if cfg.ScanSig.Extension != ".DAT" {
		t.Fatalf("expected extension .DAT with its case kept, got %q", cfg.ScanSig.Extension)
	}
	if len(cfg.Signatures) != 1 || cfg.Signatures[0].Label != "PNG" {
		t.Fatalf("unexpected signatures: %+v", cfg.Signatures)
	}
	raw, err := cfg.Signatures[0].Bytes()
	if err != nil {
		t.Fatalf("decode signature: %v", err)
	}
	if !bytes.Equal(raw, []byte{0x89, 'P', 'N', 'G'}) {
		t.Fatalf("unexpected signature bytes: % x", raw)
	}
	if !cfg.Output.MustNotExist {
		t.Fatal("expected must_not_exist from file")
	}
}

func TestEnvVarOverridesConfigFileForBinaries(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "imgtools.toml")
	content := "[jpeg2png]\nbinary = \"file-ffmpeg\"\n\n[webp2png]\nbinary = \"file-cwebp\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("IMGTOOLS_FFMPEG", "env-ffmpeg")
	t.Setenv("IMGTOOLS_CWEBP", "env-cwebp")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.JPEG2PNG.Binary != "env-ffmpeg" {
		t.Fatalf("expected env ffmpeg override, got %q", cfg.JPEG2PNG.Binary)
	}
	if cfg.WEBP2PNG.Binary != "env-cwebp" {
		t.Fatalf("expected env cwebp override, got %q", cfg.WEBP2PNG.Binary)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "negative workers",
			content: "[jpeg2png]\nworkers = -2\n",
			wantErr: "jpeg2png.workers",
		},
		{
			name:    "negative timeout",
			content: "[webp2png]\ntimeout_seconds = -1\n",
			wantErr: "webp2png.timeout_seconds",
		},
		{
			name:    "bad hex",
			content: "[[signatures]]\npattern = \"zz\"\nlabel = \"Broken\"\n",
			wantErr: "signatures[0].pattern",
		},
		{
			name:    "missing label",
			content: "[[signatures]]\npattern = \"00\"\n",
			wantErr: "signatures[0].label",
		},
		{
			name:    "pattern longer than header",
			content: "[[signatures]]\npattern = \"" + strings.Repeat("00", 17) + "\"\nlabel = \"Long\"\n",
			wantErr: "at most 16 bytes",
		},
		{
			name:    "unknown log level",
			content: "[logging]\nlevel = \"loud\"\n",
			wantErr: "logging.level",
		},
		{
			name:    "unknown log format",
			content: "[logging]\nformat = \"xml\"\n",
			wantErr: "logging.format",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "imgtools.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatalf("expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	t.Setenv("IMGTOOLS_FFMPEG", "")
	t.Setenv("IMGTOOLS_CWEBP", "")

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.JPEG2PNG.Binary != "ffmpeg" || cfg.WEBP2PNG.Binary != "cwebp" {
		t.Fatalf("unexpected binaries from sample: %q %q", cfg.JPEG2PNG.Binary, cfg.WEBP2PNG.Binary)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/logs/imgtools.log")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "logs", "imgtools.log") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}
