// Package timerange resolves raw CLI time inputs (literal timestamps or
// chapter selectors) into a concrete start/end range in seconds.
package timerange

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Sentinel errors for the resolver's failure classes. Callers match them
// with errors.Is to produce class-specific diagnostics.
var (
	ErrBadTimeLiteral  = errors.New("bad time literal")
	ErrChapterNotFound = errors.New("chapter not found")
	ErrInvalidRange    = errors.New("invalid time range")
)

// clockPattern matches exactly two-digit hh:mm:ss. Single-digit fields
// (e.g. "1:2:3") and fractional seconds are rejected on purpose.
var clockPattern = regexp.MustCompile(`^([0-9]{2}:){2}[0-9]{2}$`)

// Field selects which chapter offset a lookup returns.
type Field int

const (
	FieldStart Field = iota
	FieldEnd
)

// Chapter is the resolver's view of a chapter marker.
//
// It is deliberately decoupled from the prober's output format; use
// ffprobe.ProbeResult.TimeRangeChapters() to convert probed metadata.
type Chapter struct {
	Start float64
	End   float64
	Title string
}

// Range is a resolved start/end pair in seconds, with Start < End.
type Range struct {
	Start float64
	End   float64
}

// Spec carries the raw time inputs for one run, one side each.
//
// A chapter number of 0 means "not given"; numbers are 1-based. The CLI
// layer enforces that at most one selector per side is populated.
type Spec struct {
	StartTime          string // literal seconds or hh:mm:ss, default "0"
	StartChapterNumber int
	StartChapterName   string
	EndTime            string
	EndChapterNumber   int
	EndChapterName     string
}

// ParseTimeLiteral parses a literal time into whole seconds.
//
// Two forms are accepted: a strict two-digit "hh:mm:ss" clock string, or a
// base-10 integer counting seconds directly. Anything else fails with
// ErrBadTimeLiteral.
//
// Example:
//
//	ParseTimeLiteral("01:02:03") // 3723
//	ParseTimeLiteral("90")       // 90
//	ParseTimeLiteral("1:2:3")    // error (fields must be two digits)
func ParseTimeLiteral(s string) (int, error) {
	if clockPattern.MatchString(s) {
		h, _ := strconv.Atoi(s[0:2])
		m, _ := strconv.Atoi(s[3:5])
		sec, _ := strconv.Atoi(s[6:8])
		return h*3600 + m*60 + sec, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (want hh:mm:ss or integer seconds)", ErrBadTimeLiteral, s)
	}
	return n, nil
}

// ChapterTime looks up a chapter offset by 1-based number or by exact title.
//
// The second return value reports whether a chapter was selected at all: a
// number of 0 and an empty title mean "not given", and a title with no
// case-sensitive match also returns absent. A number outside the chapter
// list is an error rather than a silent miss.
func ChapterTime(chapters []Chapter, number int, title string, field Field) (float64, bool, error) {
	if number != 0 {
		if number < 1 || number > len(chapters) {
			return 0, false, fmt.Errorf("%w: chapter number %d (file has %d chapters)",
				ErrChapterNotFound, number, len(chapters))
		}
		return chapters[number-1].offset(field), true, nil
	}

	if title != "" {
		for _, ch := range chapters {
			if ch.Title == title {
				return ch.offset(field), true, nil
			}
		}
	}

	return 0, false, nil
}

func (c Chapter) offset(field Field) float64 {
	if field == FieldEnd {
		return c.End
	}
	return c.Start
}

// Resolve turns the raw inputs in spec into a concrete Range.
//
// Start resolution tries the chapter selectors first and falls back to the
// literal start time (default "0") when no chapter matches. A chapter-derived
// start always wins over the literal. End resolution is stricter: if an end
// chapter selector was given, a missing title match fails with
// ErrChapterNotFound instead of falling back; with no selector the end
// literal is used if present, otherwise the full media duration.
//
// The resolved range must satisfy End > Start or ErrInvalidRange is returned.
func Resolve(chapters []Chapter, duration float64, spec Spec) (Range, error) {
	start, found, err := ChapterTime(chapters, spec.StartChapterNumber, spec.StartChapterName, FieldStart)
	if err != nil {
		return Range{}, err
	}
	if !found {
		literal := spec.StartTime
		if literal == "" {
			literal = "0"
		}
		secs, err := ParseTimeLiteral(literal)
		if err != nil {
			return Range{}, fmt.Errorf("start time: %w", err)
		}
		start = float64(secs)
	}

	var end float64
	switch {
	case spec.EndChapterNumber != 0 || spec.EndChapterName != "":
		t, found, err := ChapterTime(chapters, spec.EndChapterNumber, spec.EndChapterName, FieldEnd)
		if err != nil {
			return Range{}, err
		}
		if !found {
			return Range{}, fmt.Errorf("%w: no chapter titled %q", ErrChapterNotFound, spec.EndChapterName)
		}
		end = t
	case spec.EndTime != "":
		secs, err := ParseTimeLiteral(spec.EndTime)
		if err != nil {
			return Range{}, fmt.Errorf("end time: %w", err)
		}
		end = float64(secs)
	default:
		end = duration
	}

	if end <= start {
		return Range{}, fmt.Errorf("%w: end %.2fs is not after start %.2fs", ErrInvalidRange, end, start)
	}

	return Range{Start: start, End: end}, nil
}
