// Package config loads, normalizes, and validates imgtools configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// IMGTOOLS_FFMPEG and IMGTOOLS_CWEBP. The Config type centralizes every knob
// the three command-line tools need: transcoder binaries and timeouts, worker
// counts, the output-directory policy, extension matching, extra signature
// patterns, and logging.
//
// Always obtain settings through this package so command code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
