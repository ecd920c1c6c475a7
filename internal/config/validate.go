package config

import (
	"errors"
	"fmt"
)

// maxSignatureLength matches the number of header bytes the scanner reads.
const maxSignatureLength = 16

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateConverters(); err != nil {
		return err
	}
	if err := c.validateSignatures(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateConverters() error {
	if c.JPEG2PNG.Workers < 1 {
		return errors.New("jpeg2png.workers must be at least 1")
	}
	if err := ensureNonNegativeMap(map[string]int{
		"jpeg2png.timeout_seconds": c.JPEG2PNG.TimeoutSeconds,
		"webp2png.timeout_seconds": c.WEBP2PNG.TimeoutSeconds,
	}); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSignatures() error {
	for i, sig := range c.Signatures {
		if sig.Label == "" {
			return fmt.Errorf("signatures[%d].label must be set", i)
		}
		raw, err := sig.Bytes()
		if err != nil {
			return fmt.Errorf("signatures[%d].pattern: %w", i, err)
		}
		if len(raw) > maxSignatureLength {
			return fmt.Errorf("signatures[%d].pattern must be at most %d bytes, got %d", i, maxSignatureLength, len(raw))
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}

func ensureNonNegativeMap(values map[string]int) error {
	for key, value := range values {
		if value < 0 {
			return fmt.Errorf("%s must be zero or positive", key)
		}
	}
	return nil
}
