// Package screenshot builds and executes FFmpeg commands that grab a single
// still frame from a video file at a given timestamp.
package screenshot

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"framegrab/internal/timeutil"
)

// Builder constructs FFmpeg still-frame capture commands for one source file.
//
// The defaults produce a lossless 24-bit RGB PNG with no audio stream and
// the pixel aspect ratio normalized to square (setsar=1). One Builder is
// reused for every capture of a run; Capture is safe to call repeatedly with
// different timestamps because the builder itself holds no per-capture state.
type Builder struct {
	sourcePath       string
	codec            string
	compressionLevel int
	pixelFormat      string
}

// NewBuilder creates a Builder for the given source file with PNG defaults.
func NewBuilder(sourcePath string) *Builder {
	return &Builder{
		sourcePath:       sourcePath,
		codec:            "png",
		compressionLevel: 1,
		pixelFormat:      "rgb24",
	}
}

// SetCodec sets the still-image codec (e.g. "png", "mjpeg").
func (b *Builder) SetCodec(codec string) *Builder {
	b.codec = codec
	return b
}

// SetCompressionLevel sets the encoder compression level.
func (b *Builder) SetCompressionLevel(level int) *Builder {
	b.compressionLevel = level
	return b
}

// SetPixelFormat sets the output pixel format (e.g. "rgb24").
func (b *Builder) SetPixelFormat(format string) *Builder {
	b.pixelFormat = format
	return b
}

// BuildArgs constructs the FFmpeg command arguments for one capture.
//
// The -ss seek is placed before -i for fast input seeking; -frames:v 1
// limits output to a single frame and -an drops audio entirely.
func (b *Builder) BuildArgs(timestamp int, outputPath string) []string {
	return []string{
		"-hide_banner",
		"-ss", timeutil.FormatSeconds(float64(timestamp)),
		"-i", b.sourcePath,
		"-vf", "setsar=1",
		"-frames:v", "1",
		"-c:v", b.codec,
		"-compression_level", strconv.Itoa(b.compressionLevel),
		"-an",
		"-pix_fmt", b.pixelFormat,
		"-y", outputPath,
	}
}

// Capture runs FFmpeg to write a single still image at the given timestamp,
// overwriting any existing file at outputPath. It blocks until FFmpeg exits.
func (b *Builder) Capture(ctx context.Context, timestamp int, outputPath string) error {
	if b.sourcePath == "" {
		return fmt.Errorf("cannot capture: source path is empty")
	}

	args := b.BuildArgs(timestamp, outputPath)
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg command failed: %w (output: %s)", err, string(output))
	}
	return nil
}

// DryRun returns the FFmpeg command as a string without executing it.
func (b *Builder) DryRun(timestamp int, outputPath string) (string, error) {
	if b.sourcePath == "" {
		return "", fmt.Errorf("cannot build command: source path is empty")
	}
	return fmt.Sprintf("ffmpeg %s", strings.Join(b.BuildArgs(timestamp, outputPath), " ")), nil
}

// GetInputPath returns the source file path.
func (b *Builder) GetInputPath() string {
	return b.sourcePath
}
