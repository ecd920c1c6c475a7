package config

const (
	defaultFFmpegBinary      = "ffmpeg"
	defaultCwebpBinary       = "cwebp"
	defaultJPEGWorkers       = 1
	defaultScanExtension     = ".bin"
	defaultLogFormat         = "console"
	defaultLogLevel          = "warn"
	defaultConfigPath        = "~/.config/imgtools/config.toml"
	defaultProjectConfigName = "imgtools.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		JPEG2PNG: JPEG2PNG{
			Binary:  defaultFFmpegBinary,
			Workers: defaultJPEGWorkers,
		},
		WEBP2PNG: WEBP2PNG{
			Binary: defaultCwebpBinary,
		},
		ScanSig: ScanSig{
			Extension: defaultScanExtension,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
