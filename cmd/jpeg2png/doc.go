// Package main hosts the jpeg2png entrypoint.
//
// jpeg2png converts every .jpg and .jpeg file in a directory to PNG by running
// ffmpeg once per file across a fixed-size worker pool. A failed conversion is
// reported on its progress line and counted; it never stops the batch. The
// originals can optionally be deleted afterwards, which removes every matched
// source whether or not its own conversion succeeded.
package main
