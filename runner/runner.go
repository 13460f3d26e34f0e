// Package runner executes a computed screenshot schedule sequentially.
package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v2"
	"go.uber.org/zap"

	"framegrab/schedule"
)

// Extractor captures a single still frame at the given timestamp.
//
// The interface exists so the run loop can be tested without spawning real
// FFmpeg processes. The production implementation is screenshot.Builder.
type Extractor interface {
	Capture(ctx context.Context, timestamp int, outputPath string) error
}

// Runner walks a schedule in order, invoking the extractor once per entry.
//
// Extraction is strictly sequential: each capture blocks until the external
// process completes. The first failure aborts the remaining schedule;
// already-written images are left in place.
type Runner struct {
	extractor    Extractor
	outDir       string
	simulate     bool
	showProgress bool
	logger       *zap.Logger
}

// New creates a Runner writing images into outDir.
func New(extractor Extractor, outDir string) *Runner {
	return &Runner{
		extractor:    extractor,
		outDir:       outDir,
		showProgress: true,
		logger:       zap.NewNop(),
	}
}

// SetSimulate enables dry-run mode: the schedule is still walked in full but
// no extraction is invoked and no image files are created.
func (r *Runner) SetSimulate(simulate bool) *Runner {
	r.simulate = simulate
	return r
}

// SetShowProgress toggles the terminal progress bar.
func (r *Runner) SetShowProgress(show bool) *Runner {
	r.showProgress = show
	return r
}

// SetLogger sets the diagnostic logger.
func (r *Runner) SetLogger(logger *zap.Logger) *Runner {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Run ensures the output directory exists, then executes every entry of the
// plan in timestamp order. The directory creation is idempotent and happens
// once, before the first capture, even in simulate mode.
func (r *Runner) Run(ctx context.Context, plan *schedule.Schedule) error {
	if plan == nil {
		return fmt.Errorf("schedule cannot be nil")
	}

	if err := os.MkdirAll(r.outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var bar *progressbar.ProgressBar
	if r.showProgress && plan.Total > 0 {
		bar = progressbar.NewOptions(plan.Total,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Generating screenshots"),
		)
	}

	for _, entry := range plan.Entries {
		if !r.simulate {
			outputPath := filepath.Join(r.outDir, entry.Filename)
			r.logger.Debug("capturing frame",
				zap.Int("index", entry.Index),
				zap.Int("timestamp", entry.Timestamp),
				zap.String("output", outputPath),
			)
			if err := r.extractor.Capture(ctx, entry.Timestamp, outputPath); err != nil {
				return fmt.Errorf("screenshot %d/%d at %ds: %w",
					entry.Index, entry.Total, entry.Timestamp, err)
			}
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return nil
}
