package ffprobe

// Package ffprobe extracts duration and chapter metadata from media files
// using the ffprobe command-line tool.

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"

	"framegrab/timerange"
)

// ChapterTags holds the tag dictionary ffprobe attaches to a chapter.
// Only the title is relevant here.
type ChapterTags struct {
	Title string `json:"title,omitempty"`
}

// Chapter represents a chapter marker in a media file.
//
// StartTime and EndTime are decimal-second strings as emitted by ffprobe
// (e.g. "12.480000"); use ProbeResult.TimeRangeChapters to get parsed values.
type Chapter struct {
	ID        int64       `json:"id"`
	TimeBase  string      `json:"time_base"`
	Start     int64       `json:"start"`
	StartTime string      `json:"start_time"`
	End       int64       `json:"end"`
	EndTime   string      `json:"end_time"`
	Tags      ChapterTags `json:"tags"`
}

// Format represents the container format information.
type Format struct {
	Filename       string `json:"filename"`
	FormatName     string `json:"format_name"`
	FormatLongName string `json:"format_long_name"`
	Duration       string `json:"duration"`
	Size           string `json:"size"`
	BitRate        string `json:"bit_rate"`
}

// ProbeResult holds the metadata extracted from a media file: container
// format information and chapter markers if present.
type ProbeResult struct {
	Chapters []Chapter `json:"chapters"`
	Format   Format    `json:"format"`
}

// GetDuration returns the duration of the media file in seconds.
//
// Returns an error if the duration cannot be parsed.
func (pr *ProbeResult) GetDuration() (float64, error) {
	if pr.Format.Duration == "" {
		return 0, fmt.Errorf("duration not available in format metadata")
	}

	duration, err := strconv.ParseFloat(pr.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration '%s': %w", pr.Format.Duration, err)
	}

	return duration, nil
}

// HasChapters returns true if the media file contains chapter markers.
func (pr *ProbeResult) HasChapters() bool {
	return len(pr.Chapters) > 0
}

// GetChapterCount returns the number of chapters in the media file.
func (pr *ProbeResult) GetChapterCount() int {
	return len(pr.Chapters)
}

// TimeRangeChapters converts the probed chapters into the resolver's format.
//
// This keeps the timerange package decoupled from ffprobe's string-typed
// offsets. Returns an error if any chapter offset fails to parse.
func (pr *ProbeResult) TimeRangeChapters() ([]timerange.Chapter, error) {
	chapters := make([]timerange.Chapter, len(pr.Chapters))
	for i, ch := range pr.Chapters {
		start, err := strconv.ParseFloat(ch.StartTime, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start_time for chapter %d: %w", i+1, err)
		}
		end, err := strconv.ParseFloat(ch.EndTime, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end_time for chapter %d: %w", i+1, err)
		}
		chapters[i] = timerange.Chapter{
			Start: start,
			End:   end,
			Title: ch.Tags.Title,
		}
	}
	return chapters, nil
}

// Probe analyzes a media file and extracts its metadata using ffprobe.
//
// The function executes ffprobe with JSON output format and parses the
// result to extract duration, chapter, and format information. Probe
// failures are distinct from extraction failures downstream: the returned
// error always carries ffprobe context.
//
// Example:
//
//	result, err := ffprobe.Probe("/path/to/video.mp4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	duration, _ := result.GetDuration()
//	fmt.Printf("Duration: %.2f seconds\n", duration)
func Probe(sourcePath string) (*ProbeResult, error) {
	if sourcePath == "" {
		return nil, fmt.Errorf("source path cannot be empty")
	}

	// -v quiet: suppress banner and log noise
	// -print_format json: structured output
	// -show_chapters / -show_format: the two sections this tool consumes
	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_chapters",
		"-show_format",
		sourcePath,
	}

	cmd := exec.Command("ffprobe", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w (output: %s)", err, string(output))
	}

	var result ProbeResult
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe JSON output: %w", err)
	}

	return &result, nil
}
