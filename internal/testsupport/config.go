package testsupport

import (
	"testing"

	"imgtools/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a default config whose transcoders are stubs, then
// applies opts.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.JPEG2PNG.Binary = FFmpegStub(t)
	cfg.WEBP2PNG.Binary = CwebpStub(t)
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithMustNotExist enables the strict output-directory policy.
func WithMustNotExist() ConfigOption {
	return func(c *config.Config) {
		c.Output.MustNotExist = true
	}
}
