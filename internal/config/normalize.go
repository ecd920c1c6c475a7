package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeBinaries()
	c.normalizeScanSig()
	c.normalizeSignatures()
	return c.normalizeLogging()
}

func (c *Config) normalizeBinaries() {
	if value, ok := os.LookupEnv("IMGTOOLS_FFMPEG"); ok && strings.TrimSpace(value) != "" {
		c.JPEG2PNG.Binary = value
	}
	if value, ok := os.LookupEnv("IMGTOOLS_CWEBP"); ok && strings.TrimSpace(value) != "" {
		c.WEBP2PNG.Binary = value
	}
	c.JPEG2PNG.Binary = strings.TrimSpace(c.JPEG2PNG.Binary)
	if c.JPEG2PNG.Binary == "" {
		c.JPEG2PNG.Binary = defaultFFmpegBinary
	}
	c.WEBP2PNG.Binary = strings.TrimSpace(c.WEBP2PNG.Binary)
	if c.WEBP2PNG.Binary == "" {
		c.WEBP2PNG.Binary = defaultCwebpBinary
	}
	if c.JPEG2PNG.Workers == 0 {
		c.JPEG2PNG.Workers = defaultJPEGWorkers
	}
}

func (c *Config) normalizeScanSig() {
	ext := strings.TrimSpace(c.ScanSig.Extension)
	if ext == "" {
		ext = defaultScanExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	c.ScanSig.Extension = ext
}

func (c *Config) normalizeSignatures() {
	for i := range c.Signatures {
		c.Signatures[i].Pattern = strings.TrimSpace(c.Signatures[i].Pattern)
		c.Signatures[i].Label = strings.TrimSpace(c.Signatures[i].Label)
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		expanded, err := expandPath(strings.TrimSpace(c.Logging.File))
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}

func decodeHexPattern(pattern string) ([]byte, error) {
	cleaned := strings.NewReplacer(" ", "", ":", "", "\t", "").Replace(pattern)
	cleaned = strings.TrimPrefix(strings.TrimPrefix(cleaned, "0x"), "0X")
	if cleaned == "" {
		return nil, fmt.Errorf("empty pattern")
	}
	raw, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode hex pattern %q: %w", pattern, err)
	}
	return raw, nil
}
