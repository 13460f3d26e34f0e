package timerange

import (
	"errors"
	"testing"
)

func testChapters() []Chapter {
	return []Chapter{
		{Start: 0, End: 100, Title: "Intro"},
		{Start: 100, End: 200, Title: "Main"},
	}
}

func TestParseTimeLiteral(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  int
		expectErr bool
	}{
		{"Clock string", "01:02:03", 3723, false},
		{"Zero clock", "00:00:00", 0, false},
		{"Plain seconds", "90", 90, false},
		{"Zero seconds", "0", 0, false},
		{"Large clock", "10:00:00", 36000, false},
		{"Single-digit fields rejected", "1:2:3", 0, true},
		{"Fractional seconds rejected", "10.5", 0, true},
		{"Fractional clock rejected", "00:00:01.5", 0, true},
		{"Garbage", "abc", 0, true},
		{"Empty", "", 0, true},
		{"Missing field", "01:02", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseTimeLiteral(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("ParseTimeLiteral(%q) expected error, got %d", tt.input, result)
				}
				if !errors.Is(err, ErrBadTimeLiteral) {
					t.Errorf("expected ErrBadTimeLiteral, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimeLiteral(%q) unexpected error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseTimeLiteral(%q) = %d; want %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestChapterTime(t *testing.T) {
	chapters := testChapters()

	tests := []struct {
		name        string
		number      int
		title       string
		field       Field
		expected    float64
		expectFound bool
		expectErr   bool
	}{
		{"Second chapter start by number", 2, "", FieldStart, 100, true, false},
		{"First chapter end by number", 1, "", FieldEnd, 100, true, false},
		{"End by title", 0, "Main", FieldEnd, 200, true, false},
		{"Start by title", 0, "Intro", FieldStart, 0, true, false},
		{"Nothing given", 0, "", FieldStart, 0, false, false},
		{"Title miss is absent", 0, "Credits", FieldEnd, 0, false, false},
		{"Title match is case-sensitive", 0, "main", FieldEnd, 0, false, false},
		{"Number out of range", 5, "", FieldStart, 0, false, true},
		{"Negative number", -1, "", FieldStart, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := ChapterTime(chapters, tt.number, tt.title, tt.field)
			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrChapterNotFound) {
					t.Errorf("expected ErrChapterNotFound, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if found != tt.expectFound {
				t.Fatalf("found = %v; want %v", found, tt.expectFound)
			}
			if found && got != tt.expected {
				t.Errorf("got %.2f; want %.2f", got, tt.expected)
			}
		})
	}
}

func TestChapterTime_NumberWinsOverTitle(t *testing.T) {
	// A chapter number takes precedence even when a title is also present.
	got, found, err := ChapterTime(testChapters(), 1, "Main", FieldStart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || got != 0 {
		t.Errorf("expected chapter 1 start (0), got %.2f (found=%v)", got, found)
	}
}

func TestResolve(t *testing.T) {
	chapters := testChapters()

	tests := []struct {
		name          string
		spec          Spec
		duration      float64
		expectedStart float64
		expectedEnd   float64
		wantErr       error
	}{
		{
			name:          "Defaults cover the whole file",
			spec:          Spec{StartTime: "0"},
			duration:      300,
			expectedStart: 0,
			expectedEnd:   300,
		},
		{
			name:          "Empty start literal treated as zero",
			spec:          Spec{},
			duration:      300,
			expectedStart: 0,
			expectedEnd:   300,
		},
		{
			name:          "Literal start and end",
			spec:          Spec{StartTime: "00:01:00", EndTime: "00:02:00"},
			duration:      300,
			expectedStart: 60,
			expectedEnd:   120,
		},
		{
			name:          "Chapter start wins over literal default",
			spec:          Spec{StartTime: "0", StartChapterNumber: 2},
			duration:      300,
			expectedStart: 100,
			expectedEnd:   300,
		},
		{
			name:          "Start title miss falls back to literal",
			spec:          Spec{StartTime: "30", StartChapterName: "Credits"},
			duration:      300,
			expectedStart: 30,
			expectedEnd:   300,
		},
		{
			name:          "End chapter by title",
			spec:          Spec{StartTime: "0", EndChapterName: "Main"},
			duration:      300,
			expectedStart: 0,
			expectedEnd:   200,
		},
		{
			name:          "Whole chapter by number",
			spec:          Spec{StartChapterNumber: 1, EndChapterNumber: 1},
			duration:      300,
			expectedStart: 0,
			expectedEnd:   100,
		},
		{
			name:     "End before start",
			spec:     Spec{StartTime: "50", EndTime: "30"},
			duration: 300,
			wantErr:  ErrInvalidRange,
		},
		{
			name:     "End equals start",
			spec:     Spec{StartTime: "50", EndTime: "50"},
			duration: 300,
			wantErr:  ErrInvalidRange,
		},
		{
			name:     "End chapter title miss is an error",
			spec:     Spec{StartTime: "0", EndChapterName: "Credits"},
			duration: 300,
			wantErr:  ErrChapterNotFound,
		},
		{
			name:     "End chapter number out of range",
			spec:     Spec{StartTime: "0", EndChapterNumber: 7},
			duration: 300,
			wantErr:  ErrChapterNotFound,
		},
		{
			name:     "Start chapter number out of range",
			spec:     Spec{StartChapterNumber: 7},
			duration: 300,
			wantErr:  ErrChapterNotFound,
		},
		{
			name:     "Bad start literal",
			spec:     Spec{StartTime: "1:2:3"},
			duration: 300,
			wantErr:  ErrBadTimeLiteral,
		},
		{
			name:     "Bad end literal",
			spec:     Spec{StartTime: "0", EndTime: "abc"},
			duration: 300,
			wantErr:  ErrBadTimeLiteral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := Resolve(chapters, tt.duration, tt.spec)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error, got range %+v", rng)
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got: %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rng.Start != tt.expectedStart {
				t.Errorf("start = %.2f; want %.2f", rng.Start, tt.expectedStart)
			}
			if rng.End != tt.expectedEnd {
				t.Errorf("end = %.2f; want %.2f", rng.End, tt.expectedEnd)
			}
		})
	}
}

func TestResolve_NoChapters(t *testing.T) {
	// A file without chapters still resolves from literals and duration.
	rng, err := Resolve(nil, 120, Spec{StartTime: "10"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rng.Start != 10 || rng.End != 120 {
		t.Errorf("got {%.2f %.2f}; want {10 120}", rng.Start, rng.End)
	}

	// But selecting a chapter from an empty list must fail.
	_, err = Resolve(nil, 120, Spec{StartChapterNumber: 1})
	if !errors.Is(err, ErrChapterNotFound) {
		t.Errorf("expected ErrChapterNotFound, got: %v", err)
	}
}
