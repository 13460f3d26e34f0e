// Package schedule computes the ordered list of capture timestamps and
// output filenames for one screenshot run.
package schedule

import (
	"fmt"
	"math"
	"strconv"

	"framegrab/timerange"
)

// Entry is one planned capture: a 1-based sequence index, the integer
// timestamp to seek to, the advertised total for the run, and the output
// filename (basename only; the runner joins it with the output directory).
type Entry struct {
	Index     int    `json:"index"`
	Timestamp int    `json:"timestamp"`
	Total     int    `json:"total"`
	Filename  string `json:"filename"`
}

// Schedule is the fully computed plan for one run.
//
// Total is the advertised screenshot count, computed from the raw range
// before the emission loop runs. It fixes the zero-padding width for the
// whole run and is what progress display reports. The emitted entry count
// never exceeds Total but can undershoot it by one when the range does not
// divide evenly into whole-second steps.
type Schedule struct {
	Entries []Entry
	Total   int
}

// Plan computes the capture schedule for the resolved range.
//
// Timestamps start at ceil(r.Start) and step by interval while strictly
// below floor(r.End). The schedule is computed eagerly and in full; it is a
// pure function of its inputs and carries no iteration state.
//
// interval must be positive.
func Plan(r timerange.Range, interval int, stem string) (*Schedule, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %d", interval)
	}

	total := int(math.Ceil((r.End - r.Start) / float64(interval)))
	width := len(strconv.Itoa(total))

	var entries []Entry
	index := 0
	for ts := int(math.Ceil(r.Start)); ts < int(math.Floor(r.End)); ts += interval {
		index++
		entries = append(entries, Entry{
			Index:     index,
			Timestamp: ts,
			Total:     total,
			Filename:  fmt.Sprintf("%s_%0*d.png", stem, width, index),
		})
	}

	return &Schedule{Entries: entries, Total: total}, nil
}
