package config

import (
	"flag"
	"fmt"
	"os"
)

// MergeFromFlags parses command-line flags and overrides config values.
//
// The input file is the first positional argument. Aliases mirror the long
// flags: -int for -interval, -o for -outpath, -e for -end-time, -v for
// -verbose, -sim for -simulate. The -s alias belongs to -start-time.
func (c *Config) MergeFromFlags(args []string) error {
	fs := flag.NewFlagSet("framegrab", flag.ContinueOnError)
	fs.Usage = printUsage

	// Config file override (handled by LoadConfig before this function is called)
	_ = fs.String("config", "", "Path to config file (default: search standard locations)")

	printChapters := fs.Bool("print-chapters", false, "Print input file chapters and exit")

	var interval int
	fs.IntVar(&interval, "interval", -1, "Screenshot interval in seconds")
	fs.IntVar(&interval, "int", -1, "Alias for -interval")

	var outPath string
	fs.StringVar(&outPath, "outpath", "", "Output directory")
	fs.StringVar(&outPath, "o", "", "Alias for -outpath")

	var startTime string
	fs.StringVar(&startTime, "start-time", "", "Start timestamp (hh:mm:ss or seconds)")
	fs.StringVar(&startTime, "s", "", "Alias for -start-time")
	startChapterNumber := fs.Int("start-chapter-number", 0, "Start chapter number (1-based)")
	startChapterName := fs.String("start-chapter-name", "", "Start chapter name")

	var endTime string
	fs.StringVar(&endTime, "end-time", "", "End timestamp (hh:mm:ss or seconds)")
	fs.StringVar(&endTime, "e", "", "Alias for -end-time")
	endChapterNumber := fs.Int("end-chapter-number", 0, "End chapter number (1-based)")
	endChapterName := fs.String("end-chapter-name", "", "End chapter name")

	var verbose bool
	fs.BoolVar(&verbose, "verbose", false, "Show run parameters and debug logs")
	fs.BoolVar(&verbose, "v", false, "Alias for -verbose")

	var simulate bool
	fs.BoolVar(&simulate, "simulate", false, "Compute the schedule without extracting")
	fs.BoolVar(&simulate, "sim", false, "Alias for -simulate")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Positional input file
	if fs.NArg() > 0 {
		c.Input = fs.Arg(0)
	}

	// Override with flag values (only if explicitly set)
	if interval >= 0 {
		c.Interval = interval
	}
	if outPath != "" {
		c.OutPath = outPath
	}
	if startTime != "" {
		c.StartTime = startTime
	}
	if *startChapterNumber != 0 {
		c.StartChapterNumber = *startChapterNumber
	}
	if *startChapterName != "" {
		c.StartChapterName = *startChapterName
	}
	if endTime != "" {
		c.EndTime = endTime
	}
	if *endChapterNumber != 0 {
		c.EndChapterNumber = *endChapterNumber
	}
	if *endChapterName != "" {
		c.EndChapterName = *endChapterName
	}
	if *printChapters {
		c.PrintChapters = true
	}
	if verbose {
		c.Verbose = true
	}
	if simulate {
		c.Simulate = true
	}

	return nil
}

// printUsage prints help text
func printUsage() {
	fmt.Fprintf(os.Stderr, `framegrab - Generate screenshots from a video file using ffmpeg

USAGE:
  framegrab [OPTIONS] INPUT_FILE

OPTIONS:
  -print-chapters
        Print input file chapters (1-based) and exit
  -interval int, -int int
        Screenshot interval in seconds (default: 20)
  -outpath string, -o string
        Output directory (default: <input dir>/screenshots)

START SELECTORS (mutually exclusive):
  -start-time string, -s string
        Start timestamp, hh:mm:ss or integer seconds (default: "0")
  -start-chapter-number int
        Start at this chapter's start time (1-based)
  -start-chapter-name string
        Start at the named chapter's start time

END SELECTORS (mutually exclusive):
  -end-time string, -e string
        End timestamp, hh:mm:ss or integer seconds (default: file duration)
  -end-chapter-number int
        End at this chapter's end time (1-based)
  -end-chapter-name string
        End at the named chapter's end time

BEHAVIORAL FLAGS:
  -verbose, -v
        Show run parameters and debug logs
  -simulate, -sim
        Compute and report the schedule without writing any images

CONFIGURATION:
  -config string
        Path to config file (default: search ./framegrab.yaml,
        ~/.framegrab/config.yaml, /etc/framegrab/config.yaml)

  Environment overrides: FRAMEGRAB_INTERVAL, FRAMEGRAB_OUTPATH
  Priority: CLI flags > environment > config file > defaults

EXAMPLES:
  # One screenshot every 20 seconds across the whole file
  framegrab movie.mkv

  # Every 60 seconds between two timestamps
  framegrab -int 60 -s 00:05:00 -e 00:45:00 movie.mkv

  # Everything within chapter 3
  framegrab -start-chapter-number 3 -end-chapter-number 3 movie.mkv

  # Report the schedule without extracting
  framegrab -sim -int 30 movie.mkv

`)
}

// PrintRunParameters prints the effective run parameters, matching what
// verbose and simulate modes report before extraction begins.
func (c *Config) PrintRunParameters(start, end float64, total int) {
	fmt.Printf("Input file: %s\n", c.Input)
	fmt.Printf("Output directory: %s\n", c.OutPath)
	fmt.Printf("Start time: %g seconds\n", start)
	fmt.Printf("End time: %g seconds\n", end)
	fmt.Printf("Interval: %d seconds\n", c.Interval)
	fmt.Printf("Total screenshots: %d\n", total)
}
