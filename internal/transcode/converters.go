package transcode

import "context"

// FFmpeg converts a single image with ffmpeg.
type FFmpeg struct {
	Runner    Runner
	Overwrite bool
}

// Convert transcodes input to output.
func (f FFmpeg) Convert(ctx context.Context, input, output string) error {
	return f.Runner.Run(ctx, FFmpegArgs(input, output, f.Overwrite))
}

// Cwebp converts a single image losslessly with cwebp.
type Cwebp struct {
	Runner Runner
}

// Convert transcodes input to output.
func (c Cwebp) Convert(ctx context.Context, input, output string) error {
	return c.Runner.Run(ctx, CwebpArgs(input, output))
}
