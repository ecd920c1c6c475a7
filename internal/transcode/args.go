package transcode

// FFmpegArgs builds the argument vector for a quiet single-image ffmpeg
// conversion. Without overwrite, ffmpeg refuses to replace an existing
// output and exits non-zero instead of prompting.
func FFmpegArgs(input, output string, overwrite bool) []string {
	confirm := "-n"
	if overwrite {
		confirm = "-y"
	}
	return []string{confirm, "-hide_banner", "-loglevel", "panic", "-i", input, output}
}

// CwebpArgs builds the argument vector for a multithreaded, lossless, quiet
// cwebp conversion at maximum quality.
func CwebpArgs(input, output string) []string {
	return []string{"-mt", "-q", "100", "-lossless", "-quiet", input, "-o", output}
}
