package config

// Config holds all framegrab configuration options
type Config struct {
	// Required: input video file (positional argument on the CLI)
	Input string `yaml:"input"`

	// Output directory for screenshots (default: <input dir>/screenshots)
	OutPath string `yaml:"outpath"`

	// Screenshot interval in seconds
	Interval int `yaml:"interval"`

	// Start selectors (mutually exclusive). StartTime is a literal time
	// ("hh:mm:ss" or integer seconds); chapter number is 1-based, 0 = unset.
	StartTime          string `yaml:"start_time"`
	StartChapterNumber int    `yaml:"start_chapter_number"`
	StartChapterName   string `yaml:"start_chapter_name"`

	// End selectors (mutually exclusive). Empty/zero means "until the end
	// of the file" unless a chapter selector is given.
	EndTime          string `yaml:"end_time"`
	EndChapterNumber int    `yaml:"end_chapter_number"`
	EndChapterName   string `yaml:"end_chapter_name"`

	// Behavioral flags
	PrintChapters bool `yaml:"-"`        // list chapters and exit
	Verbose       bool `yaml:"verbose"`  // show run parameters and debug logs
	Simulate      bool `yaml:"simulate"` // compute the schedule without extracting
}

// DefaultInterval is the screenshot interval used when none is configured.
const DefaultInterval = 20

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Input:     "",
		OutPath:   "", // derived from the input file's directory when empty
		Interval:  DefaultInterval,
		StartTime: "0",
	}
}

// StartSelectorCount returns how many start selectors are populated.
// The literal start time only counts when changed from its "0" default.
func (c *Config) StartSelectorCount() int {
	n := 0
	if c.StartTime != "" && c.StartTime != "0" {
		n++
	}
	if c.StartChapterNumber != 0 {
		n++
	}
	if c.StartChapterName != "" {
		n++
	}
	return n
}

// EndSelectorCount returns how many end selectors are populated.
func (c *Config) EndSelectorCount() int {
	n := 0
	if c.EndTime != "" {
		n++
	}
	if c.EndChapterNumber != 0 {
		n++
	}
	if c.EndChapterName != "" {
		n++
	}
	return n
}
