package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// JPEG2PNG contains settings for the parallel JPEG converter.
type JPEG2PNG struct {
	Binary         string `toml:"binary"`
	Workers        int    `toml:"workers"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// WEBP2PNG contains settings for the sequential WEBP converter.
type WEBP2PNG struct {
	Binary         string `toml:"binary"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	KeepGoing      bool   `toml:"keep_going"`
}

// ScanSig contains settings for the signature scanner.
type ScanSig struct {
	Extension string `toml:"extension"`
}

// Signature is a user-defined magic-byte pattern. Pattern is hex, optionally
// separated by spaces or colons.
type Signature struct {
	Pattern string `toml:"pattern"`
	Label   string `toml:"label"`
}

// Output contains the output-directory policy shared by both converters.
type Output struct {
	MustNotExist bool `toml:"must_not_exist"`
}

// Match contains file-extension matching options.
type Match struct {
	CaseInsensitive bool `toml:"case_insensitive"`
}

// Logging contains configuration for diagnostic log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Config encapsulates all configuration values for the imgtools binaries.
type Config struct {
	JPEG2PNG   JPEG2PNG    `toml:"jpeg2png"`
	WEBP2PNG   WEBP2PNG    `toml:"webp2png"`
	ScanSig    ScanSig     `toml:"scansig"`
	Signatures []Signature `toml:"signatures"`
	Output     Output      `toml:"output"`
	Match      Match       `toml:"match"`
	Logging    Logging     `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. A missing file is
// not an error: the defaults are returned with exists set to false.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(defaultProjectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// JPEGTimeout returns the per-file transcoder timeout for jpeg2png; zero means none.
func (c *Config) JPEGTimeout() time.Duration {
	return time.Duration(c.JPEG2PNG.TimeoutSeconds) * time.Second
}

// WEBPTimeout returns the per-file transcoder timeout for webp2png; zero means none.
func (c *Config) WEBPTimeout() time.Duration {
	return time.Duration(c.WEBP2PNG.TimeoutSeconds) * time.Second
}

// Bytes decodes the hex pattern into raw bytes.
func (s Signature) Bytes() ([]byte, error) {
	return decodeHexPattern(s.Pattern)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
